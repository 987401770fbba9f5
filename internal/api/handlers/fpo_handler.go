package handlers

import (
	"net/http"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/domain/fpo"
	"github.com/agrisetu/registry-go/pkg/response"
	"github.com/agrisetu/registry-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type FPOHandler struct {
	svc *application.FPOService
}

func NewFPOHandler(svc *application.FPOService) *FPOHandler {
	return &FPOHandler{svc: svc}
}

func (h *FPOHandler) ListFPOs(c *gin.Context) {
	fpos, err := h.svc.ListFPOs()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fpos)
}

func (h *FPOHandler) GetFPO(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	f, err := h.svc.GetFPO(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FPOHandler) CreateFPO(c *gin.Context) {
	var input fpo.CreateFPODTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	f, err := h.svc.CreateFPO(input, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FPOHandler) UpdateFPO(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input fpo.UpdateFPODTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	f, err := h.svc.UpdateFPO(id, input, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FPOHandler) DeleteFPO(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.svc.DeleteFPO(id, actorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "fpo deleted"})
}

// The eight sub-collections share the same request shape, so their
// handlers are produced generically and bound to service methods in
// the route table.

func SubCreate[T any](create func(fpoID uint, body T) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		fpoID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
			return
		}

		var body T
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}

		created, err := create(fpoID, body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func SubList[T any](list func(fpoID uint) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		fpoID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
			return
		}

		items, err := list(fpoID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func SubUpdate[T any](update func(fpoID, id uint, body T) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		fpoID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
			return
		}
		subID, err := utils.ParseIDParam(c, "subId")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
			return
		}

		var body T
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}

		updated, err := update(fpoID, subID, body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func SubDelete(del func(fpoID, id uint) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		fpoID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
			return
		}
		subID, err := utils.ParseIDParam(c, "subId")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
			return
		}

		if err := del(fpoID, subID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.MessageResponse{Message: "deleted"})
	}
}
