package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/pkg/response"
	"github.com/agrisetu/registry-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type FarmerHandler struct {
	svc        *application.FarmerService
	kyc        *application.KycService
	assignment *application.AssignmentService
	export     *application.ExportService
}

func NewFarmerHandler(svc *application.FarmerService, kyc *application.KycService, assignment *application.AssignmentService, export *application.ExportService) *FarmerHandler {
	return &FarmerHandler{svc: svc, kyc: kyc, assignment: assignment, export: export}
}

func farmerFilterFromQuery(c *gin.Context) farmer.Filter {
	filter := farmer.Filter{
		State:    utils.QueryStringPtr(c, "state"),
		District: utils.QueryStringPtr(c, "district"),
		Region:   utils.QueryStringPtr(c, "region"),
	}
	if v := c.Query("kyc_status"); v != "" {
		status := farmer.KycStatus(v)
		filter.KycStatus = &status
	}
	if v := c.Query("assignment_status"); v != "" {
		status := farmer.AssignmentStatus(v)
		filter.AssignmentStatus = &status
	}
	if id, err := utils.ParseQueryUintParam(c, "employee_id"); err == nil {
		filter.AssignedEmployeeID = &id
	}
	return filter
}

func (h *FarmerHandler) ListFarmers(c *gin.Context) {
	farmers, err := h.svc.ListFarmers(farmerFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, farmers)
}

func (h *FarmerHandler) GetFarmer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	f, err := h.svc.GetFarmer(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FarmerHandler) CreateFarmer(c *gin.Context) {
	var input farmer.CreateFarmerDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	f, err := h.svc.CreateFarmer(input, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FarmerHandler) UpdateFarmer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input farmer.UpdateFarmerDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	f, err := h.svc.UpdateFarmer(id, input, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FarmerHandler) DeleteFarmer(c *gin.Context) {
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

	if err := h.svc.DeleteFarmer(id, actorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "farmer deleted"})
}

// --- KYC actions ---

func (h *FarmerHandler) kycAction(c *gin.Context, action func(farmerID, reviewerID uint, reason string) (farmer.Farmer, error)) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input farmer.KycActionDTO
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
	}

	reviewerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	f, err := action(id, reviewerID, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FarmerHandler) ApproveKyc(c *gin.Context) {
	h.kycAction(c, func(farmerID, reviewerID uint, _ string) (farmer.Farmer, error) {
		return h.kyc.ApproveKyc(farmerID, reviewerID)
	})
}

func (h *FarmerHandler) RejectKyc(c *gin.Context) {
	h.kycAction(c, h.kyc.RejectKyc)
}

func (h *FarmerHandler) ReferBackKyc(c *gin.Context) {
	h.kycAction(c, h.kyc.ReferBackKyc)
}

func (h *FarmerHandler) SubmitKyc(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	f, err := h.kyc.SubmitKyc(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// --- assignment ---

func (h *FarmerHandler) AssignFarmers(c *gin.Context) {
	var input farmer.AssignFarmersDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.assignment.AssignFarmers(input.FarmerIDs, input.EmployeeID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FarmerHandler) UnassignFarmer(c *gin.Context) {
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

	f, err := h.assignment.UnassignFarmer(id, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FarmerHandler) ListUnassigned(c *gin.Context) {
	farmers, err := h.assignment.ListUnassigned()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, farmers)
}

// --- export ---

func (h *FarmerHandler) ExportFarmers(c *gin.Context) {
	data, err := h.export.ExportFarmers(farmerFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("farmers-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
