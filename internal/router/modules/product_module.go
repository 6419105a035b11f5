package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/fangearhq/fangear-api/internal/interface/http"
)

// ProductModule wires the catalog routes.
type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Handler.List)
	rg.GET("/products/:id", m.Handler.Get)
	rg.POST("/products", m.Handler.Create)
}
