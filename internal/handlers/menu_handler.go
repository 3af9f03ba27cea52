package handlers

import (
	"net/http"

	"animated-nav/internal/service"
	"animated-nav/pkg/navigation"

	"github.com/gin-gonic/gin"
)

type letterResponse struct {
	Index int     `json:"index"`
	Text  string  `json:"text"`
	Glyph string  `json:"glyph"`
	Delay float64 `json:"delay"`
}

type menuItemResponse struct {
	ID        string           `json:"id"`
	Label     string           `json:"label"`
	Accent    bool             `json:"accent"`
	Highlight bool             `json:"highlight"`
	Class     string           `json:"class"`
	Letters   []letterResponse `json:"letters"`
}

type MenuHandler struct {
	service *service.MenuService
}

func NewMenuHandler(service *service.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// List returns the menu view model: items, control classes and letter delays.
func (h *MenuHandler) List(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service not configured"})
		return
	}

	menu := h.service.Menu()

	items := make([]menuItemResponse, 0, len(menu.Entries))
	for _, entry := range menu.Entries {
		items = append(items, newMenuItemResponse(entry))
	}

	c.JSON(http.StatusOK, gin.H{
		"aria_label": menu.AriaLabel,
		"items":      items,
	})
}

func newMenuItemResponse(entry navigation.Entry) menuItemResponse {
	letters := make([]letterResponse, 0, entry.Word.Len())
	for _, letter := range entry.Word.Letters {
		letters = append(letters, letterResponse{
			Index: letter.Index,
			Text:  letter.Text,
			Glyph: letter.Glyph,
			Delay: letter.DelaySeconds(),
		})
	}

	return menuItemResponse{
		ID:        entry.Item.ID,
		Label:     entry.Item.Label,
		Accent:    entry.Item.Accent,
		Highlight: entry.Item.Highlight,
		Class:     entry.Class,
		Letters:   letters,
	}
}
