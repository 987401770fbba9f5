package farmer

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to KycStatus
		want     bool
	}{
		{KycStatusNotStarted, KycStatusPending, true},
		{KycStatusNotStarted, KycStatusApproved, false},
		{KycStatusPending, KycStatusApproved, true},
		{KycStatusPending, KycStatusRejected, true},
		{KycStatusPending, KycStatusReferBack, true},
		{KycStatusReferBack, KycStatusPending, true},
		{KycStatusReferBack, KycStatusApproved, true},
		{KycStatusReferBack, KycStatusRejected, true},
		{KycStatusApproved, KycStatusApproved, false},
		{KycStatusApproved, KycStatusRejected, false},
		{KycStatusRejected, KycStatusPending, false},
		{KycStatusRejected, KycStatusApproved, false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestAssigned(t *testing.T) {
	f := Farmer{AssignmentStatus: AssignmentStatusUnassigned}
	if f.Assigned() {
		t.Error("unassigned farmer reported as assigned")
	}

	// status alone is not enough, both fields must be set
	f.AssignmentStatus = AssignmentStatusAssigned
	if f.Assigned() {
		t.Error("assigned status with nil fields reported as assigned")
	}
}
