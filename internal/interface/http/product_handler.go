package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fangearhq/fangear-api/internal/application"
	"github.com/fangearhq/fangear-api/internal/domain/entity"
	"github.com/fangearhq/fangear-api/internal/domain/repository"
	"github.com/fangearhq/fangear-api/pkg/helpers"
	"github.com/fangearhq/fangear-api/pkg/response"
	"github.com/fangearhq/fangear-api/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type createProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	ProductType string  `json:"product_type"`
	Team        string  `json:"team"`
	Sport       string  `json:"sport"`
}

// List returns the whole catalog, or only rows whose sport exactly
// equals the ?sport= query value.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context(), c.Query("sport"))
	if err != nil {
		if h.Logger != nil {
			helpers.LogError(h.Logger, "product listing failed", err, nil)
		}
		response.Fail(c, http.StatusInternalServerError, "failed to list products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get returns the product row, or an empty 200 body when the id does
// not exist. The original surface has no 404 here and clients depend
// on that.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(http.StatusOK)
			return
		}
		if h.Logger != nil {
			helpers.LogError(h.Logger, "product lookup failed", err, logrus.Fields{"product_id": id})
		}
		response.Fail(c, http.StatusInternalServerError, "failed to get product")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		ProductType: req.ProductType,
		Team:        req.Team,
		Sport:       req.Sport,
	}
	if err := h.Svc.Create(c.Request.Context(), p); err != nil {
		if h.Logger != nil {
			helpers.LogError(h.Logger, "product insert failed", err, logrus.Fields{"name": req.Name})
		}
		response.Fail(c, http.StatusInternalServerError, "failed to create product")
		return
	}
	response.ID(c, p.ID)
}
