package moderation_usecases

import (
	"strings"

	"photogate.io/application/utils"
	"photogate.io/entities"
)

type ViolationSeverity string

const (
	ViolationSeverityBlock ViolationSeverity = "block"
	ViolationSeverityWarn  ViolationSeverity = "warn"
)

// Result severity is binary: a photo either passes moderation or is blocked.
const (
	ResultSeverityPass  = "pass"
	ResultSeverityBlock = "block"
)

// Violation is one moderation finding. Code is stable and machine-readable;
// Label and Message are display copy.
type Violation struct {
	Code     string            `json:"code"`
	Label    string            `json:"label"`
	Severity ViolationSeverity `json:"severity"`
	Message  string            `json:"message"`
}

type ModerationResult struct {
	ID         string      `json:"id"`
	Allowed    bool        `json:"allowed"`
	Severity   string      `json:"severity"`
	Violations []Violation `json:"violations"`
}

// ModerateContent gates a capture before any processing happens. It only
// reasons over detector output, never raw pixels: multiple faces and a
// missing face are the blocking conditions.
func ModerateContent(face *entities.FaceData, faceCount int) ModerationResult {
	result := ModerationResult{
		ID:       utils.GenerateULIDString(),
		Allowed:  true,
		Severity: ResultSeverityPass,
	}

	// multiple faces outranks everything else and is always listed first
	if faceCount > 1 {
		result.Violations = append(result.Violations, Violation{
			Code:     "MULTIPLE_FACES",
			Label:    "Multiple Faces",
			Severity: ViolationSeverityBlock,
			Message:  "Only one person may appear in the photo",
		})
	} else if faceCount < 1 || face == nil {
		result.Violations = append(result.Violations, Violation{
			Code:     "NO_FACE",
			Label:    "No Face",
			Severity: ViolationSeverityBlock,
			Message:  "No face was detected in the photo",
		})
	}

	for _, violation := range result.Violations {
		if violation.Severity == ViolationSeverityBlock {
			result.Allowed = false
			result.Severity = ResultSeverityBlock
			break
		}
	}
	return result
}

// HasBlockingViolation reports whether any violation in the result blocks
// the capture outright.
func HasBlockingViolation(result ModerationResult) bool {
	for _, violation := range result.Violations {
		if violation.Severity == ViolationSeverityBlock {
			return true
		}
	}
	return false
}

// GetBlockedMessage flattens blocking violations into user-facing copy. A
// single violation reads as one line; several become a bulleted list.
func GetBlockedMessage(result ModerationResult) string {
	var messages []string
	for _, violation := range result.Violations {
		if violation.Severity == ViolationSeverityBlock {
			messages = append(messages, violation.Message)
		}
	}
	switch len(messages) {
	case 0:
		return ""
	case 1:
		return messages[0]
	default:
		var builder strings.Builder
		for i, message := range messages {
			if i > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString("• ")
			builder.WriteString(message)
		}
		return builder.String()
	}
}
