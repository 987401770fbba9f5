package handlers

import (
	"net/http"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/domain/employee"
	"github.com/agrisetu/registry-go/pkg/response"
	"github.com/agrisetu/registry-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	svc        *application.EmployeeService
	assignment *application.AssignmentService
}

func NewEmployeeHandler(svc *application.EmployeeService, assignment *application.AssignmentService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, assignment: assignment}
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	filter := employee.Filter{
		Department: utils.QueryStringPtr(c, "department"),
	}
	if v := c.Query("status"); v != "" {
		status := employee.Status(v)
		filter.Status = &status
	}

	employees, err := h.svc.ListEmployees(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	e, err := h.svc.GetEmployee(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var input employee.CreateEmployeeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	e, err := h.svc.CreateEmployee(input, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input employee.UpdateEmployeeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	e, err := h.svc.UpdateEmployee(id, input, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
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

	if err := h.svc.DeleteEmployee(id, actorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "employee deleted"})
}

// ListAssignedFarmers returns the farmers currently held by the employee.
func (h *EmployeeHandler) ListAssignedFarmers(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	farmers, err := h.assignment.ListAssignedTo(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, farmers)
}
