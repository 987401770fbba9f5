package handlers

import (
	"net/http"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/domain/registration"
	"github.com/agrisetu/registry-go/pkg/response"
	"github.com/agrisetu/registry-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	svc *application.RegistrationService
}

func NewRegistrationHandler(svc *application.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// CreateRegistration is the public self-signup endpoint.
func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	var input registration.CreateRegistrationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.svc.CreateRegistration(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

func (h *RegistrationHandler) ListRegistrations(c *gin.Context) {
	filter := registration.Filter{}
	if v := c.Query("status"); v != "" {
		status := registration.Status(v)
		filter.Status = &status
	}
	if v := c.Query("role"); v != "" {
		role := registration.Role(v)
		filter.Role = &role
	}

	regs, err := h.svc.ListRegistrations(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regs)
}

func (h *RegistrationHandler) GetRegistration(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	reg, err := h.svc.GetRegistration(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) ApproveRegistration(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	approverID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	reg, err := h.svc.ApproveRegistration(id, approverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) RejectRegistration(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input registration.RejectRegistrationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	approverID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	reg, err := h.svc.RejectRegistration(id, approverID, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}
