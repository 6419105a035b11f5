package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fangearhq/fangear-api/internal/application"
	"github.com/fangearhq/fangear-api/pkg/helpers"
	"github.com/fangearhq/fangear-api/pkg/response"
	"github.com/fangearhq/fangear-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Birthmonth string `json:"birthmonth"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		Birthmonth: req.Birthmonth,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		if h.Logger != nil {
			helpers.LogError(h.Logger, "register failed", err, logrus.Fields{"username": req.Username})
		}
		response.Fail(c, http.StatusInternalServerError, "failed to register user")
		return
	}
	response.ID(c, u.ID)
}

// Login answers 200 for both outcomes. The failure body is identical
// for an unknown username and a wrong password, and the success body
// carries the user row without its credential hash.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusOK, gin.H{"message": "Login failed"})
			return
		}
		if h.Logger != nil {
			helpers.LogError(h.Logger, "login failed", err, logrus.Fields{"username": req.Username})
		}
		response.Fail(c, http.StatusInternalServerError, "failed to log in")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": u})
}
