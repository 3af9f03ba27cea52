package app

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"animated-nav/internal/config"
	"animated-nav/internal/handlers"
	"animated-nav/internal/middleware"
	"animated-nav/internal/render"
	"animated-nav/internal/seed"
	"animated-nav/internal/service"
	"animated-nav/pkg/cache"
	"animated-nav/pkg/logger"
	"animated-nav/pkg/navigation"
)

type Application struct {
	cfg *config.Config

	ctx    context.Context
	cancel context.CancelFunc

	registry    *navigation.Registry
	renderer    *render.Renderer
	cache       *cache.Cache
	rateLimiter *middleware.RateLimitManager

	services serviceContainer
	handlers handlerContainer

	router *gin.Engine
	server *http.Server
}

type serviceContainer struct {
	Menu *service.MenuService
}

type handlerContainer struct {
	Template *handlers.TemplateHandler
	Menu     *handlers.MenuHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &Application{
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}

	steps := []func() error{
		app.initRegistry,
		app.initRenderer,
		app.initCache,
		app.initServices,
		app.initHandlers,
		app.initRouter,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			app.release()
			return nil, err
		}
	}

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
		"items":       a.registry.Len(),
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	a.release()
	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) release() {
	if a.cancel != nil {
		a.cancel()
	}

	if a.rateLimiter != nil {
		a.rateLimiter.Shutdown()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}
}

func (a *Application) initRegistry() error {
	var dataFS fs.FS
	if dir := strings.TrimSpace(a.cfg.NavDataDir); dir != "" {
		dataFS = os.DirFS(dir)
		logger.Info("Loading navigation definitions", map[string]interface{}{"dir": dir})
	}

	registry, err := seed.LoadRegistry(dataFS, a.cfg.NavStrict)
	if err != nil {
		return fmt.Errorf("failed to load navigation registry: %w", err)
	}

	a.registry = registry
	return nil
}

func (a *Application) initRenderer() error {
	var templatesFS fs.FS
	if dir := strings.TrimSpace(a.cfg.TemplatesDir); dir != "" {
		templatesFS = os.DirFS(dir)
	}

	renderer, err := render.New(templatesFS, a.assetModTime)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	a.renderer = renderer
	logger.Info("Templates loaded successfully", nil)
	return nil
}

func (a *Application) initCache() error {
	fragments, err := cache.NewCache(a.ctx, a.cfg.RedisURL, a.cfg.EnableCache)
	if err != nil {
		logger.Error(err, "Fragment cache unavailable, rendering without it", map[string]interface{}{"addr": a.cfg.RedisURL})
		fragments = cache.Disabled()
	}

	a.cache = fragments
	return nil
}

func (a *Application) initServices() error {
	opts := navigation.Options{
		Styles:    navigation.DefaultStyles().WithPrefix(a.cfg.StylePrefix),
		Stagger:   a.cfg.CharDelayStep,
		AriaLabel: a.cfg.NavAriaLabel,
		Brand: navigation.Brand{
			Mark: a.cfg.BrandMark,
			Text: a.cfg.BrandText,
		},
	}

	a.services = serviceContainer{
		Menu: service.NewMenuService(a.registry, a.renderer, opts, a.cache, a.cfg.CacheTTL),
	}
	return nil
}

func (a *Application) initHandlers() error {
	templateHandler, err := handlers.NewTemplateHandler(a.services.Menu, a.renderer, a.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize template handler: %w", err)
	}

	a.handlers = handlerContainer{
		Template: templateHandler,
		Menu:     handlers.NewMenuHandler(a.services.Menu),
	}
	return nil
}

func (a *Application) initRouter() error {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.rateLimiter = middleware.NewRateLimitManager(a.ctx, a.cfg.RateLimitRequests, a.cfg.RateLimitWindow, a.cfg.RateLimitBurst)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RateLimitMiddleware(a.rateLimiter))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if info, err := os.Stat(a.cfg.StaticDir); err == nil && info.IsDir() {
		router.Static("/static", a.cfg.StaticDir)
	} else {
		logger.Warn("Static directory not found, stylesheet will not be served", map[string]interface{}{"dir": a.cfg.StaticDir})
	}

	router.GET("/", a.handlers.Template.RenderIndex)
	router.GET("/fragment/nav", a.handlers.Template.RenderFragment)

	corsConfig := cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}

	v1 := router.Group("/api/v1")
	v1.Use(cors.New(corsConfig))
	{
		v1.GET("/navigation", a.handlers.Menu.List)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Route not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.String(http.StatusNotFound, "404 - Page not found")
	})

	a.router = router
	return nil
}

// assetModTime resolves a /static URL path to a file under StaticDir.
func (a *Application) assetModTime(assetPath string) (time.Time, error) {
	const prefix = "/static/"
	if !strings.HasPrefix(assetPath, prefix) {
		return time.Time{}, fmt.Errorf("asset %q is not a static path", assetPath)
	}

	relative := path.Clean("/" + strings.TrimPrefix(assetPath, prefix))
	info, err := os.Stat(filepath.Join(a.cfg.StaticDir, filepath.FromSlash(relative)))
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
