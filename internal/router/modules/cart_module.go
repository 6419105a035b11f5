package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/fangearhq/fangear-api/internal/interface/http"
)

// CartModule wires the cart routes.
type CartModule struct {
	Handler *handlers.CartHandler
}

func NewCartModule(h *handlers.CartHandler) *CartModule {
	return &CartModule{Handler: h}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	rg.POST("/cart", m.Handler.Add)
	rg.GET("/cart", m.Handler.List)
	rg.DELETE("/cart/:productId", m.Handler.Remove)
}
