package moderation_usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photogate.io/entities"
)

func TestModerateContent(t *testing.T) {
	face := &entities.FaceData{X: 100, Y: 100, W: 200, H: 250}

	tests := []struct {
		name      string
		face      *entities.FaceData
		faceCount int
		allowed   bool
		codes     []string
	}{
		{"single face passes", face, 1, true, nil},
		{"single face without landmarks still passes", &entities.FaceData{W: 100, H: 120}, 1, true, nil},
		{"no face blocks", nil, 0, false, []string{"NO_FACE"}},
		{"count zero with stale face data blocks", face, 0, false, []string{"NO_FACE"}},
		{"two faces block", face, 2, false, []string{"MULTIPLE_FACES"}},
		{"crowd blocks with multiple faces only", face, 5, false, []string{"MULTIPLE_FACES"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ModerateContent(tt.face, tt.faceCount)
			assert.NotEmpty(t, result.ID)
			assert.Equal(t, tt.allowed, result.Allowed)
			if tt.allowed {
				assert.Equal(t, ResultSeverityPass, result.Severity)
			} else {
				assert.Equal(t, ResultSeverityBlock, result.Severity)
			}
			codes := make([]string, 0, len(result.Violations))
			for _, violation := range result.Violations {
				codes = append(codes, violation.Code)
			}
			if tt.codes == nil {
				assert.Empty(t, codes)
			} else {
				assert.Equal(t, tt.codes, codes)
			}
			assert.Equal(t, !tt.allowed, HasBlockingViolation(result))
		})
	}
}

func TestModerateContentFreshIDPerCall(t *testing.T) {
	first := ModerateContent(nil, 0)
	second := ModerateContent(nil, 0)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetBlockedMessage(t *testing.T) {
	t.Run("no violations", func(t *testing.T) {
		result := ModerateContent(&entities.FaceData{W: 100, H: 100}, 1)
		assert.Equal(t, "", GetBlockedMessage(result))
	})

	t.Run("single violation is one line", func(t *testing.T) {
		result := ModerateContent(nil, 0)
		message := GetBlockedMessage(result)
		assert.Equal(t, "No face was detected in the photo", message)
		assert.NotContains(t, message, "•")
	})

	t.Run("multiple violations become bullets", func(t *testing.T) {
		result := ModerationResult{
			Violations: []Violation{
				{Code: "MULTIPLE_FACES", Severity: ViolationSeverityBlock, Message: "Only one person may appear in the photo"},
				{Code: "NO_FACE", Severity: ViolationSeverityBlock, Message: "No face was detected in the photo"},
			},
		}
		message := GetBlockedMessage(result)
		assert.Equal(t, "• Only one person may appear in the photo\n• No face was detected in the photo", message)
	})

	t.Run("warnings are excluded", func(t *testing.T) {
		result := ModerationResult{
			Violations: []Violation{
				{Code: "SOFT", Severity: ViolationSeverityWarn, Message: "minor"},
				{Code: "HARD", Severity: ViolationSeverityBlock, Message: "blocked"},
			},
		}
		assert.Equal(t, "blocked", GetBlockedMessage(result))
	})
}

func TestCheckFinalCompliance(t *testing.T) {
	t.Run("warnings alone allow proceeding", func(t *testing.T) {
		result := CheckFinalCompliance([]entities.ComplianceCheck{
			{ID: "face", Status: entities.CheckStatusPass},
			{ID: "background", Status: entities.CheckStatusWarn, Message: "background not verified"},
		})
		assert.True(t, result.CanProceed)
		require.Len(t, result.Issues, 1)
		assert.Equal(t, IssueSeverityWarning, result.Issues[0].Severity)
		assert.Equal(t, "background", result.Issues[0].CheckID)
	})

	t.Run("failures block", func(t *testing.T) {
		result := CheckFinalCompliance([]entities.ComplianceCheck{
			{ID: "face", Status: entities.CheckStatusFail, Message: "no face"},
			{ID: "resolution", Status: entities.CheckStatusWarn, Message: "low resolution"},
		})
		assert.False(t, result.CanProceed)
		require.Len(t, result.Issues, 2)
		assert.Equal(t, IssueSeverityError, result.Issues[0].Severity)
		assert.Equal(t, IssueSeverityWarning, result.Issues[1].Severity)
	})

	t.Run("pending counts as blocking", func(t *testing.T) {
		result := CheckFinalCompliance([]entities.ComplianceCheck{
			{ID: "head_size", Status: entities.CheckStatusPending, Message: "waiting"},
		})
		assert.False(t, result.CanProceed)
		require.Len(t, result.Issues, 1)
		assert.Equal(t, IssueSeverityError, result.Issues[0].Severity)
	})

	t.Run("all passing", func(t *testing.T) {
		result := CheckFinalCompliance([]entities.ComplianceCheck{
			{ID: "face", Status: entities.CheckStatusPass},
			{ID: "glasses", Status: entities.CheckStatusPass},
		})
		assert.True(t, result.CanProceed)
		assert.Empty(t, result.Issues)
	})
}
