package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rfp-backend/internal/shared/server/respond"
)

// ItemResponse is the outward-facing representation of a catalog item.
type ItemResponse struct {
	SKU       string   `json:"sku"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	UnitPrice float64  `json:"unitPrice"`
	Keywords  []string `json:"keywords"`
}

// Handler serves the read-only product catalog.
type Handler struct {
	Catalog *Catalog
}

// NewHandler constructs a Handler.
func NewHandler(cat *Catalog) *Handler {
	return &Handler{Catalog: cat}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", h.list)
}

func (h *Handler) list(c *gin.Context) {
	items := h.Catalog.Items()
	resp := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, ItemResponse{
			SKU:       item.SKU,
			Name:      item.Name,
			Category:  item.Category,
			UnitPrice: item.UnitPrice,
			Keywords:  item.Keywords,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}
