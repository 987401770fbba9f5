package farmer

// kycTransitions is the single place KYC state changes are defined.
// Approval and rejection are reachable only from PENDING or REFER_BACK;
// APPROVED and REJECTED are terminal.
var kycTransitions = map[KycStatus][]KycStatus{
	KycStatusNotStarted: {KycStatusPending},
	KycStatusPending:    {KycStatusApproved, KycStatusRejected, KycStatusReferBack},
	KycStatusReferBack:  {KycStatusPending, KycStatusApproved, KycStatusRejected},
	KycStatusApproved:   {},
	KycStatusRejected:   {},
}

// CanTransition reports whether the KYC workflow allows from -> to.
func CanTransition(from, to KycStatus) bool {
	for _, next := range kycTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
