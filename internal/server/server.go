// file: internal/server/server.go
// version: 1.4.0
// guid: e6a8c0d2-f4b6-4c8d-a0e2-b4c6d8e0f2a4

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jdfalk/dealsearch/internal/catalog"
	"github.com/jdfalk/dealsearch/internal/config"
	"github.com/jdfalk/dealsearch/internal/corpus"
	"github.com/jdfalk/dealsearch/internal/metrics"
	"github.com/jdfalk/dealsearch/internal/models"
	"github.com/jdfalk/dealsearch/internal/resolver"
	"github.com/jdfalk/dealsearch/internal/router"
	"github.com/jdfalk/dealsearch/internal/search"
	"github.com/jdfalk/dealsearch/internal/server/middleware"
	"github.com/jdfalk/dealsearch/internal/suggest"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	store      *corpus.Store
	assembler  *suggest.Assembler
	engine     *search.Engine
	resolver   *resolver.Resolver
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// GetDefaultServerConfig returns the stock listen configuration.
func GetDefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:         "8080",
		Host:         "localhost",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewServer creates a new server instance over a corpus store. The matching
// components are built from the loaded application config.
func NewServer(store *corpus.Store) *Server {
	engine := gin.New()

	// Set up middleware
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())
	engine.Use(middleware.RequestID())

	limiter := middleware.NewIPRateLimiter(config.AppConfig.RateLimitPerMinute, config.AppConfig.RateLimitBurst)
	engine.Use(limiter.Middleware())

	// Register metrics (idempotent)
	metrics.Register()

	cfg := config.AppConfig
	server := &Server{
		router:    engine,
		store:     store,
		assembler: suggest.New(store, cfg.FuzzyThreshold, cfg.MaxSuggestions, cfg.MaxPerPartition),
		engine:    search.New(store, cfg.FuzzyThreshold),
		resolver:  resolver.New(store, cfg.ExactMatchVariants),
	}

	server.setupRoutes()
	server.publishCorpusGauges()

	return server
}

// Start starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (s *Server) Start(cfg ServerConfig) error {
	s.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exited")
	return nil
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint (standard path)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint (both paths for compatibility)
	s.router.GET("/api/health", s.healthCheck)
	s.router.GET("/api/v1/health", s.healthCheck)

	api := s.router.Group("/api/v1")
	{
		api.GET("/suggest", s.suggestHandler)
		api.GET("/search", s.searchHandler)
		api.GET("/resolve", s.resolveHandler)
		api.GET("/categories", s.listCategories)
		api.GET("/products", s.listProducts)
		api.GET("/corpus/stats", s.corpusStats)

		admin := api.Group("/corpus", middleware.BasicAuth("dealsearch admin"))
		admin.POST("/reload", s.reloadCorpus)
	}
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	stats := corpus.StatsOf(s.store.Snapshot())
	status := "ok"
	if !s.store.Loaded() {
		// Still serving, but every query will come back empty.
		status = "no_data"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"loaded":    s.store.Loaded(),
		"corpus":    stats,
		"timestamp": time.Now().Unix(),
	})
}

func (s *Server) suggestHandler(c *gin.Context) {
	query := c.Query("q")
	start := time.Now()

	items := s.assembler.Suggest(query)
	metrics.IncQuery("suggest")
	metrics.ObserveQueryDuration("suggest", time.Since(start))
	if len(items) == 0 {
		metrics.IncQueryEmpty("suggest")
	}

	// Ensure we never return null - always return empty array
	if items == nil {
		items = []models.Suggestion{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items), "query": query})
}

func (s *Server) searchHandler(c *gin.Context) {
	query := c.Query("q")
	start := time.Now()

	results := s.engine.SearchAll(query)
	metrics.IncQuery("search")
	metrics.ObserveQueryDuration("search", time.Since(start))
	if len(results) == 0 {
		metrics.IncQueryEmpty("search")
	}

	c.JSON(http.StatusOK, gin.H{"items": results, "count": len(results), "query": query})
}

func (s *Server) resolveHandler(c *gin.Context) {
	query := c.Query("q")
	start := time.Now()

	match, ok := s.resolver.Resolve(query)
	metrics.IncQuery("resolve")
	metrics.ObserveQueryDuration("resolve", time.Since(start))
	if !ok {
		metrics.IncQueryEmpty("resolve")
		c.JSON(http.StatusNotFound, gin.H{"error": "no exact match", "query": query})
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match, "query": query})
}

func (s *Server) listCategories(c *gin.Context) {
	type categoryInfo struct {
		Key         string   `json:"key"`
		DisplayName string   `json:"display_name"`
		Keywords    []string `json:"keywords"`
		Link        string   `json:"link"`
	}

	keys := router.Keys()
	out := make([]categoryInfo, 0, len(keys))
	for _, key := range keys {
		out = append(out, categoryInfo{
			Key:         key,
			DisplayName: router.DisplayName(key),
			Keywords:    router.Keywords(key),
			Link:        models.CategoryLink(key),
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out, "count": len(out)})
}

// listProducts serves the home page product grid: category and search
// filtering, sorting, and the load-more paging window.
func (s *Server) listProducts(c *gin.Context) {
	products := s.store.Snapshot().Products

	products = catalog.FilterByCategory(products, c.Query("category"))
	products = catalog.FilterBySearch(products, c.Query("search"))
	products = catalog.Sort(products, c.Query("sort"))

	count := catalog.InitialPageSize
	if raw := c.Query("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			count = n
		}
	}

	total := len(products)
	page := catalog.Page(products, count)
	c.JSON(http.StatusOK, gin.H{
		"items":      page,
		"count":      len(page),
		"total":      total,
		"has_more":   catalog.HasMore(products, len(page)),
		"next_count": catalog.NextWindow(len(page)),
	})
}

func (s *Server) corpusStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loaded": s.store.Loaded(),
		"stats":  corpus.StatsOf(s.store.Snapshot()),
	})
}

func (s *Server) reloadCorpus(c *gin.Context) {
	path := config.AppConfig.CorpusPath
	loaded, err := corpus.Load(path)
	if err != nil {
		log.Printf("[ERROR] corpus reload failed for %s: %v", path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.store.Replace(loaded)
	metrics.IncCorpusReload()
	s.publishCorpusGauges()

	stats := corpus.StatsOf(loaded)
	log.Printf("[INFO] corpus reloaded from %s: %d products, %d gifts, %d earn offers",
		path, stats.Products, stats.Gifts, stats.EarnOffers)
	c.JSON(http.StatusOK, gin.H{"reloaded": true, "stats": stats})
}

func (s *Server) publishCorpusGauges() {
	stats := corpus.StatsOf(s.store.Snapshot())
	metrics.SetCategories(stats.Categories)
	metrics.SetProducts(stats.Products)
	metrics.SetGifts(stats.Gifts)
	metrics.SetEarnOffers(stats.EarnOffers)
}
