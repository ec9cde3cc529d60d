package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/api/handlers"
	"eliteblog/api/middleware"
	"eliteblog/gateway"
	"eliteblog/services"
	"eliteblog/settings"
)

// Deps carries everything the routes need.
type Deps struct {
	Posts     *services.PostService
	Dashboard *services.DashboardService
	Trends    *services.TrendService
	Wallet    *services.WalletService
	Assistant *services.AssistantService
	Analyser  *services.AnalyserService
	Publish   *services.PublishService
	Views     *services.ViewService
	Settings  *settings.Store
	Gateway   *gateway.Gateway

	// BaseURL is the public origin for absolute links.
	BaseURL string
	// StaticDir serves the client bundle when non-empty.
	StaticDir string
	// BasicRequestLog swaps the trace middleware for the lighter
	// method/path/status log line.
	BasicRequestLog bool
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if d.BasicRequestLog {
		r.Use(middleware.RequestLoggingMiddleware())
	} else {
		r.Use(middleware.RequestTrace())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/sitemap.xml", handlers.SitemapHandler(d.Posts, d.BaseURL))

	// legacy publish endpoint kept for older clients
	r.POST("/api/publish-post", handlers.PublishPostHandler(d.Publish))

	if d.StaticDir != "" {
		static := r.Group("/static", staleWhileRevalidate())
		static.Static("/", d.StaticDir)
	}

	api := r.Group("/api/v1")
	{
		api.GET("/home", handlers.HomeHandler(d.Posts))
		api.GET("/posts", handlers.ListPostsHandler(d.Posts))
		api.GET("/posts/:id", handlers.GetPostHandler(d.Posts))
		api.POST("/posts", handlers.CreatePostHandler(d.Posts))
		api.PATCH("/posts/:id", handlers.UpdatePostHandler(d.Posts))
		api.POST("/posts/:id/optimize", handlers.OptimizePostHandler(d.Dashboard))

		ai := api.Group("/ai")
		{
			ai.POST("/summary", handlers.SummarizeHandler(d.Gateway))
			ai.POST("/translate", handlers.TranslateHandler(d.Gateway))
			ai.POST("/seo", handlers.SuggestSEOHandler(d.Gateway))
			ai.POST("/article", handlers.GenerateArticleHandler(d.Gateway))
			ai.POST("/image", handlers.GenerateImageHandler(d.Gateway))
			ai.POST("/tts", handlers.SpeakHandler(d.Gateway))
		}

		api.GET("/dashboard", handlers.DashboardHandler(d.Dashboard))

		api.GET("/trends", handlers.FetchTrendsHandler(d.Trends))
		api.POST("/trends/start", handlers.StartTrendArticleHandler(d.Trends))

		api.GET("/wallet", handlers.WalletHandler(d.Wallet))
		api.POST("/wallet/withdraw", handlers.WithdrawHandler(d.Wallet))

		api.POST("/business-plan", handlers.BusinessPlanHandler(d.Gateway))

		api.GET("/assistant/status", handlers.AssistantStatusHandler(d.Assistant))
		api.POST("/assistant/audit", handlers.AssistantAuditHandler(d.Assistant))

		api.POST("/analyser", handlers.AnalyseExternalHandler(d.Analyser))
		api.POST("/analyser/internal", handlers.AnalyseInternalHandler(d.Analyser))
		api.POST("/analyser/speed", handlers.SpeedAuditHandler(d.Analyser))

		api.GET("/view", handlers.CurrentViewHandler(d.Views))
		api.POST("/view", handlers.NavigateHandler(d.Views))

		api.GET("/pages/privacy", handlers.PrivacyHandler())
		api.GET("/pages/terms", handlers.TermsHandler())

		api.GET("/settings/measurement-id", handlers.GetMeasurementIDHandler(d.Settings))
		api.PUT("/settings/measurement-id", handlers.SetMeasurementIDHandler(d.Settings))
	}

	return r
}

// staleWhileRevalidate lets clients reuse cached assets while refreshing
// them in the background.
func staleWhileRevalidate() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=3600, stale-while-revalidate=86400")
		c.Next()
	}
}
