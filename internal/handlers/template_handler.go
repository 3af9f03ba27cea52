package handlers

import (
	"fmt"
	"net/http"

	"animated-nav/internal/config"
	"animated-nav/internal/render"
	"animated-nav/internal/service"
	"animated-nav/pkg/logger"

	"github.com/gin-gonic/gin"
)

const stylesheetPath = "/static/css/animated-nav.css"

type TemplateHandler struct {
	menuService *service.MenuService
	renderer    *render.Renderer
	config      *config.Config
}

func NewTemplateHandler(menuService *service.MenuService, renderer *render.Renderer, cfg *config.Config) (*TemplateHandler, error) {
	if menuService == nil {
		return nil, fmt.Errorf("menu service is required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	return &TemplateHandler{
		menuService: menuService,
		renderer:    renderer,
		config:      cfg,
	}, nil
}

// RenderIndex serves a standalone page hosting the menu.
func (h *TemplateHandler) RenderIndex(c *gin.Context) {
	nav, err := h.menuService.Render(c.Request.Context())
	if err != nil {
		logger.Error(err, "Failed to render navigation", nil)
		h.renderError(c, http.StatusInternalServerError, "Failed to render navigation")
		return
	}

	output, err := h.renderer.Page(render.PageData{
		Title:      h.config.SiteName,
		Language:   h.config.SiteLanguage,
		Stylesheet: stylesheetPath,
		Nav:        nav,
	})
	if err != nil {
		logger.Error(err, "Failed to render layout", map[string]interface{}{"template": "base.html"})
		h.renderError(c, http.StatusInternalServerError, "Failed to render layout")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", output)
}

// RenderFragment serves only the menu markup for embedding by a parent layout.
func (h *TemplateHandler) RenderFragment(c *gin.Context) {
	nav, err := h.menuService.Render(c.Request.Context())
	if err != nil {
		logger.Error(err, "Failed to render navigation fragment", nil)
		h.renderError(c, http.StatusInternalServerError, "Failed to render navigation")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(nav))
}

func (h *TemplateHandler) renderError(c *gin.Context, status int, msg string) {
	c.Data(status, "text/plain; charset=utf-8", []byte(fmt.Sprintf("%d - %s", status, msg)))
}
