package handlers

import (
	"net/http"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/pkg/response"
	"github.com/agrisetu/registry-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	svc *application.CardService
}

func NewCardHandler(svc *application.CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

// IssueCard mints an ID card for an approved farmer. Reissuing
// replaces any card issued earlier.
func (h *CardHandler) IssueCard(c *gin.Context) {
	farmerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	crd, err := h.svc.IssueCard(farmerID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crd)
}

func (h *CardHandler) GetCard(c *gin.Context) {
	farmerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	crd, err := h.svc.GetCard(farmerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crd)
}

func (h *CardHandler) RevokeCard(c *gin.Context) {
	farmerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	crd, err := h.svc.RevokeCard(farmerID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crd)
}
