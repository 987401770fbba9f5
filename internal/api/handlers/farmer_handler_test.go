package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrisetu/registry-go/internal/api/handlers"
	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/domain/employee"
	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/agrisetu/registry-go/internal/repository"
	"github.com/agrisetu/registry-go/internal/testutils"
	"github.com/agrisetu/registry-go/pkg/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.Repos) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := testutils.NewTestRepos(t)
	publisher := notify.NewPublisher()
	t.Cleanup(publisher.Close)

	svc := application.New(repos, publisher)
	h := handlers.New(svc, nil, publisher)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("claims", &types.Claims{UserID: 1, Username: "admin", Role: "ADMIN", IsAdmin: true})
		c.Next()
	})

	r.GET("/farmers", h.Farmer.ListFarmers)
	r.POST("/farmers", h.Farmer.CreateFarmer)
	r.POST("/farmers/assign", h.Farmer.AssignFarmers)
	r.GET("/farmers/:id", h.Farmer.GetFarmer)
	r.DELETE("/farmers/:id", h.Farmer.DeleteFarmer)
	r.PUT("/farmers/:id/kyc/approve", h.Farmer.ApproveKyc)
	r.PUT("/farmers/:id/kyc/reject", h.Farmer.RejectKyc)

	return r, repos
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedHandlerEmployee(t *testing.T, repos *repository.Repos) uint {
	t.Helper()
	e := employee.Employee{Name: "ravi", Email: "ravi@registry.test", Status: employee.StatusActive}
	if err := repos.Employee.Create(&e); err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return e.ID
}

func TestCreateFarmerEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/farmers", gin.H{
		"name":     "Sunil Jadhav",
		"phone":    "9876543210",
		"state":    "Maharashtra",
		"district": "Nashik",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created farmer.Farmer
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.FarmerCode)
	assert.Equal(t, farmer.KycStatusPending, created.KycStatus)
}

func TestCreateFarmerEndpoint_MissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/farmers", gin.H{"name": "No Phone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveKycEndpoint(t *testing.T) {
	r, repos := newTestRouter(t)
	f := farmer.Farmer{FarmerCode: "FRM-H1", Name: "x", Phone: "9", State: "MH", District: "Pune",
		KycStatus: farmer.KycStatusPending, AssignmentStatus: farmer.AssignmentStatusUnassigned}
	assert.NoError(t, repos.Farmer.Create(&f))

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/farmers/%d/kyc/approve", f.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// approving twice maps the state error to a conflict
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/farmers/%d/kyc/approve", f.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRejectKycEndpoint_WithReason(t *testing.T) {
	r, repos := newTestRouter(t)
	f := farmer.Farmer{FarmerCode: "FRM-H2", Name: "x", Phone: "9", State: "MH", District: "Pune",
		KycStatus: farmer.KycStatusPending, AssignmentStatus: farmer.AssignmentStatusUnassigned}
	assert.NoError(t, repos.Farmer.Create(&f))

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/farmers/%d/kyc/reject", f.ID), gin.H{"reason": "blurred scan"})
	assert.Equal(t, http.StatusOK, w.Code)

	stored, _ := repos.Farmer.FindByID(f.ID)
	assert.Equal(t, "blurred scan", stored.KycReason)
}

func TestGetFarmerEndpoint_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/farmers/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignFarmersEndpoint_PartialFailure(t *testing.T) {
	r, repos := newTestRouter(t)

	emp := seedHandlerEmployee(t, repos)
	f := farmer.Farmer{FarmerCode: "FRM-H3", Name: "x", Phone: "9", State: "MH", District: "Pune",
		KycStatus: farmer.KycStatusPending, AssignmentStatus: farmer.AssignmentStatusUnassigned}
	assert.NoError(t, repos.Farmer.Create(&f))

	w := doJSON(t, r, http.MethodPost, "/farmers/assign", gin.H{
		"farmer_ids":  []uint{f.ID, 9999},
		"employee_id": emp,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var result application.BatchAssignResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Assigned, 1)
	assert.Len(t, result.Failed, 1)
	assert.Equal(t, uint(9999), result.Failed[0].FarmerID)
}

func TestListFarmersEndpoint_Filter(t *testing.T) {
	r, repos := newTestRouter(t)

	for i, state := range []string{"Maharashtra", "Karnataka"} {
		f := farmer.Farmer{FarmerCode: fmt.Sprintf("FRM-H4-%d", i), Name: "x", Phone: "9",
			State: state, District: "d", KycStatus: farmer.KycStatusPending,
			AssignmentStatus: farmer.AssignmentStatusUnassigned}
		assert.NoError(t, repos.Farmer.Create(&f))
	}

	w := doJSON(t, r, http.MethodGet, "/farmers?state=Karnataka", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got []farmer.Farmer
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "Karnataka", got[0].State)
}
