package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the engine with recovery, request logging, CORS and metrics
func NewRouter(handler *Handler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(handler.logger))
	router.Use(cors.New(corsConfig(allowedOrigins)))

	if m := handler.services.Metrics; m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	SetupRoutes(router, handler)
	return router
}

func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/", handler.Index)

	router.POST("/predict", handler.Predict)
	router.POST("/predict-ml", handler.Predict)
	router.POST("/compare", handler.Compare)
	router.GET("/resolve-zone", handler.ResolveZone)

	router.GET("/zones", handler.ListZones)
	router.GET("/zones/nearest", handler.NearestZone)
	router.GET("/zones/:zone/stats", handler.ZoneStats)
	router.GET("/landmarks", handler.ListLandmarks)
	router.GET("/catalog", handler.Catalog)
	router.GET("/map", handler.Map)

	router.GET("/market-trends", handler.MarketTrends)
	router.GET("/historical-data", handler.HistoricalData)
	router.POST("/investment-analysis", handler.InvestmentAnalysis)
	router.POST("/roi-calculator", handler.ROICalculator)
	router.POST("/emi-calculator", handler.EMICalculator)

	router.GET("/history", handler.History)
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	origins := make([]string, 0, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	// cors rejects a config that allows no origin at all
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("Handled request")
	}
}
