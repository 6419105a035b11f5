package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/fangearhq/fangear-api/internal/interface/http"
	"github.com/fangearhq/fangear-api/internal/interface/middleware"
)

// ContactModule wires the contact-form route with a per-IP limiter;
// private addresses bypass it so internal smoke tests stay unthrottled.
type ContactModule struct {
	Handler *handlers.ContactHandler
	Redis   *redis.Client
}

func NewContactModule(h *handlers.ContactHandler, rdb *redis.Client) *ContactModule {
	return &ContactModule{Handler: h, Redis: rdb}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(m.Redis, 20, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/contact", limiter, m.Handler.Submit)
}
