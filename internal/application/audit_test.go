package application_test

import (
	"testing"

	"github.com/agrisetu/registry-go/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestWorkflowActionsAreAudited(t *testing.T) {
	svc, repos := newServices(t)
	f := seedFarmer(t, repos, nil)

	_, err := svc.Kyc.ApproveKyc(f.ID, 42)
	assert.NoError(t, err)

	action := "kyc_approve"
	logs, err := svc.Audit.QueryAuditLogs(repository.AuditQueryParams{Action: &action, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, uint(42), logs[0].UserID)
	assert.Equal(t, "farmer", logs[0].ResourceType)
}

func TestQueryAuditLogs_FilterByUser(t *testing.T) {
	svc, repos := newServices(t)
	f1 := seedFarmer(t, repos, nil)
	f2 := seedFarmer(t, repos, nil)

	_, err := svc.Kyc.ApproveKyc(f1.ID, 1)
	assert.NoError(t, err)
	_, err = svc.Kyc.RejectKyc(f2.ID, 2, "bad docs")
	assert.NoError(t, err)

	uid := uint(2)
	logs, err := svc.Audit.QueryAuditLogs(repository.AuditQueryParams{UserID: &uid, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, "kyc_reject", logs[0].Action)
}
