package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"eliteblog/api/router"
	"eliteblog/config"
	"eliteblog/db"
	"eliteblog/eventbus"
	"eliteblog/gateway"
	"eliteblog/logger"
	"eliteblog/models"
	"eliteblog/repositories"
	"eliteblog/services"
	"eliteblog/settings"
	"eliteblog/store"
	"eliteblog/views"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()

	// Mongo only backs the AI call log; without a URI the sink is a no-op.
	var sink gateway.LogSink = gateway.NopSink{}
	if cfg.MongoURI != "" {
		if err := db.Init(ctx, cfg.MongoURI, cfg.MongoDB); err != nil {
			log.Fatal(err)
		}
		sink = repositories.NewAILogRepository(db.Database())
	}

	gw, err := gateway.New(ctx, gateway.Config{
		Credential: cfg.Credential,
		TextModel:  cfg.Gemini.TextModel,
		ProModel:   cfg.Gemini.ProModel,
		ImageModel: cfg.Gemini.ImageModel,
		TTSModel:   cfg.Gemini.TTSModel,
	}, sink)
	if err != nil {
		log.Fatal(err)
	}
	if !gw.Ready() {
		logger.Log.Warn("GEMINI_API_KEY not configured; AI operations will report missing_credential")
	}

	var bus eventbus.Bus = eventbus.NopBus{}
	if cfg.Kafka.Brokers != "" {
		kafkaBus, err := eventbus.NewKafkaBus(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Fatal(err)
		}
		defer kafkaBus.Close()
		bus = kafkaBus
	}

	settingsStore, err := settings.NewStore(cfg.SettingsFile)
	if err != nil {
		log.Fatal(err)
	}

	postStore := store.New(models.SeedPosts())
	viewRouter := views.NewRouter()

	deps := router.Deps{
		Posts:     services.NewPostService(postStore),
		Dashboard: services.NewDashboardService(postStore, gw, settingsStore),
		Trends:    services.NewTrendService(gw, viewRouter),
		Wallet:    services.NewWalletService(cfg.Wallet.OpeningBalanceUSD),
		Assistant: services.NewAssistantService(gw, postStore, cfg.Gemini.TextModel),
		Analyser:  services.NewAnalyserService(gw, postStore),
		Publish:   services.NewPublishService(bus),
		Views:     services.NewViewService(viewRouter, postStore),
		Settings:  settingsStore,
		Gateway:   gw,
		BaseURL:   cfg.Server.BaseURL,
		StaticDir: cfg.StaticDir,

		BasicRequestLog: cfg.Logging.RequestLog == "basic",
	}
	r := router.New(deps)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"*"},
	}).Handler(r)

	logger.Log.Infof("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
