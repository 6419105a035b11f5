package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fangearhq/fangear-api/internal/application"
	"github.com/fangearhq/fangear-api/internal/domain/entity"
	"github.com/fangearhq/fangear-api/pkg/helpers"
	"github.com/fangearhq/fangear-api/pkg/response"
	"github.com/fangearhq/fangear-api/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Comment string `json:"comment"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	msg := &entity.Contact{Name: req.Name, Email: req.Email, Comment: req.Comment}
	if err := h.Svc.Submit(c.Request.Context(), msg); err != nil {
		if h.Logger != nil {
			helpers.LogError(h.Logger, "contact insert failed", err, logrus.Fields{"email": req.Email})
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}
	response.OK(c, "Contact form submitted successfully")
}
