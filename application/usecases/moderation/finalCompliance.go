package moderation_usecases

import (
	"photogate.io/entities"
)

type IssueSeverity string

const (
	IssueSeverityError   IssueSeverity = "error"
	IssueSeverityWarning IssueSeverity = "warning"
)

type ComplianceIssue struct {
	CheckID  string        `json:"check_id"`
	Severity IssueSeverity `json:"severity"`
	Message  string        `json:"message"`
}

type FinalComplianceResult struct {
	CanProceed bool              `json:"can_proceed"`
	Issues     []ComplianceIssue `json:"issues"`
}

// CheckFinalCompliance is the last gate before export. Failed checks block,
// warnings are surfaced but let the user proceed, and pending checks count
// as failures since their prerequisite never arrived.
func CheckFinalCompliance(checks []entities.ComplianceCheck) FinalComplianceResult {
	result := FinalComplianceResult{CanProceed: true}
	for _, check := range checks {
		switch check.Status {
		case entities.CheckStatusFail, entities.CheckStatusPending:
			result.CanProceed = false
			result.Issues = append(result.Issues, ComplianceIssue{
				CheckID:  check.ID,
				Severity: IssueSeverityError,
				Message:  check.Message,
			})
		case entities.CheckStatusWarn:
			result.Issues = append(result.Issues, ComplianceIssue{
				CheckID:  check.ID,
				Severity: IssueSeverityWarning,
				Message:  check.Message,
			})
		}
	}
	return result
}
