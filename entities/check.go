package entities

// CheckStatus is the tri-state compliance verdict. Pending is reserved for
// checks whose prerequisite (a detected face) is missing.
type CheckStatus string

const (
	CheckStatusPass    CheckStatus = "pass"
	CheckStatusWarn    CheckStatus = "warn"
	CheckStatusFail    CheckStatus = "fail"
	CheckStatusPending CheckStatus = "pending"
)

// ComplianceCheck is one named verdict in the ordered list the engine emits.
// IDs are stable; consumers key UI rows and the final gate off them.
type ComplianceCheck struct {
	ID      string      `json:"id"`
	Label   string      `json:"label"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
}
