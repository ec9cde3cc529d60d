package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server   ServerConfig  `yaml:"server"`
	Logging  LoggingConfig `yaml:"logging"`
	Gemini   GeminiConfig  `yaml:"gemini"`
	Kafka    KafkaConfig   `yaml:"kafka"`
	MongoURI string        `yaml:"mongo_uri"`
	MongoDB  string        `yaml:"mongo_db"`
	Wallet   WalletConfig  `yaml:"wallet"`

	// SettingsFile is where the single persisted key/value pair
	// (the GA4 measurement id) lives between runs.
	SettingsFile string `yaml:"settings_file"`

	// StaticDir optionally serves a client bundle under /static.
	StaticDir string `yaml:"static_dir"`

	// Credential is the Gemini API key, read once from GEMINI_API_KEY at
	// startup and injected into the gateway. Nothing else reads the
	// environment for it.
	Credential string `yaml:"-"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// BaseURL is the public origin used for absolute links (sitemap).
	BaseURL string `yaml:"base_url"`
}

// LoggingConfig selects the log level and the per-request log mode:
// "trace" (default) propagates X-Request-Id/X-Span-Id and logs them with
// each request; "basic" logs method/path/status/duration only.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	RequestLog string `yaml:"request_log"`
}

// GeminiConfig names the models per modality. The pro model handles the
// long-form calls (business plan, blog analysis); the text model everything
// else textual.
type GeminiConfig struct {
	TextModel  string `yaml:"text_model"`
	ProModel   string `yaml:"pro_model"`
	ImageModel string `yaml:"image_model"`
	TTSModel   string `yaml:"tts_model"`
}

// KafkaConfig is optional; with empty brokers the publish notification
// degrades to a no-op bus.
type KafkaConfig struct {
	Brokers string `yaml:"brokers"`
	Topic   string `yaml:"topic"`
}

type WalletConfig struct {
	OpeningBalanceUSD float64 `yaml:"opening_balance_usd"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		panic(err)
	}
	applyDefaults(&c)
	c.Credential = os.Getenv("GEMINI_API_KEY")
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}
	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":3000"
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:3000"
	}
	if c.Logging.RequestLog == "" {
		c.Logging.RequestLog = "trace"
	}
	if c.Gemini.TextModel == "" {
		c.Gemini.TextModel = "gemini-3-flash-preview"
	}
	if c.Gemini.ProModel == "" {
		c.Gemini.ProModel = "gemini-3-pro-preview"
	}
	if c.Gemini.ImageModel == "" {
		c.Gemini.ImageModel = "gemini-2.5-flash-image"
	}
	if c.Gemini.TTSModel == "" {
		c.Gemini.TTSModel = "gemini-2.5-flash-preview-tts"
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "eliteblog.posts"
	}
	if c.Wallet.OpeningBalanceUSD == 0 {
		c.Wallet.OpeningBalanceUSD = 2840.50
	}
	if c.SettingsFile == "" {
		c.SettingsFile = filepath.Join(GetBasePath(), "settings.json")
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
