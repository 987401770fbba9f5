package handlers

import (
	"errors"
	"net/http"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/agrisetu/registry-go/internal/storage"
	"github.com/agrisetu/registry-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Farmer       *FarmerHandler
	Employee     *EmployeeHandler
	Registration *RegistrationHandler
	FPO          *FPOHandler
	Card         *CardHandler
	Dashboard    *DashboardHandler
	Audit        *AuditHandler
	User         *UserHandler
	Document     *DocumentHandler
	Notification *NotificationHandler
}

func New(svc *application.Services, store *storage.Store, publisher *notify.Publisher) *Handlers {
	return &Handlers{
		Farmer:       NewFarmerHandler(svc.Farmer, svc.Kyc, svc.Assignment, svc.Export),
		Employee:     NewEmployeeHandler(svc.Employee, svc.Assignment),
		Registration: NewRegistrationHandler(svc.Registration),
		FPO:          NewFPOHandler(svc.FPO),
		Card:         NewCardHandler(svc.Card),
		Dashboard:    NewDashboardHandler(svc.Stats),
		Audit:        NewAuditHandler(svc.Audit),
		User:         NewUserHandler(svc.User),
		Document:     NewDocumentHandler(store),
		Notification: NewNotificationHandler(publisher),
	}
}

// respondError maps application error kinds onto HTTP statuses.
// Expected conditions are data, not exceptions; only unknown errors
// surface as 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidStateTransition), errors.Is(err, application.ErrConflict):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrValidation):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
