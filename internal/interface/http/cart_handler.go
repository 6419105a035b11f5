package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fangearhq/fangear-api/internal/application"
	"github.com/fangearhq/fangear-api/pkg/helpers"
	"github.com/fangearhq/fangear-api/pkg/response"
	"github.com/fangearhq/fangear-api/pkg/validation"
)

// CartHandler injects the configured cart identity into every service
// call. Swapping UserID for an authenticated principal is the only
// change needed to make carts multi-user.
type CartHandler struct {
	Svc    *application.CartService
	UserID int64
	Logger *logrus.Logger
}

func NewCartHandler(svc *application.CartService, userID int64, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, UserID: userID, Logger: logger}
}

type addToCartRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
}

// Add inserts a cart row without checking that the product exists.
func (h *CartHandler) Add(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	id, err := h.Svc.AddItem(c.Request.Context(), h.UserID, req.ProductID)
	if err != nil {
		if h.Logger != nil {
			helpers.LogError(h.Logger, "cart insert failed", err, logrus.Fields{"product_id": req.ProductID})
		}
		response.Fail(c, http.StatusInternalServerError, "failed to add item to cart")
		return
	}
	response.ID(c, id)
}

// List returns the full product row for every cart entry, [] when empty.
func (h *CartHandler) List(c *gin.Context) {
	products, err := h.Svc.Items(c.Request.Context(), h.UserID)
	if err != nil {
		if h.Logger != nil {
			helpers.LogError(h.Logger, "cart listing failed", err, nil)
		}
		response.Fail(c, http.StatusInternalServerError, "failed to get cart items")
		return
	}
	c.JSON(http.StatusOK, products)
}

// Remove deletes every cart row for the product in the path.
func (h *CartHandler) Remove(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.Svc.RemoveItem(c.Request.Context(), h.UserID, productID); err != nil {
		if h.Logger != nil {
			helpers.LogError(h.Logger, "cart removal failed", err, logrus.Fields{"product_id": productID})
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to remove item from cart")
		return
	}
	response.OK(c, "Item removed from cart")
}
