package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eightd-studio/engine/internal/models"
)

func strPtr(s string) *string { return &s }

func TestCauseRules(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		cause models.Cause
		want  []string
	}{
		{
			name:  "valid plain cause",
			cause: models.Cause{ProblemID: 1, CauseText: "Operator skipped step"},
		},
		{
			name:  "root cause with action",
			cause: models.Cause{ProblemID: 1, CauseText: "No poka-yoke", IsRootCause: true, PermanentAction: strPtr("Add fixture")},
		},
		{
			name:  "root cause with blank action",
			cause: models.Cause{ProblemID: 1, CauseText: "No poka-yoke", IsRootCause: true, PermanentAction: strPtr("  ")},
			want:  []string{"Permanent action is required for root causes"},
		},
		{
			name:  "everything missing",
			cause: models.Cause{IsRootCause: true},
			want: []string{
				"Problem ID is required",
				"Cause text is required",
				"Permanent action is required for root causes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&tt.cause)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.want, Messages(err))
		})
	}
}

func TestProblemRules(t *testing.T) {
	v := New()

	err := v.Struct(&models.Problem{Title: " ", Status: "pending"})
	require.Error(t, err)
	assert.Equal(t, []string{
		"Title is required",
		"Description is required",
		"Responsible team is required",
		"Invalid status value",
	}, Messages(err))

	require.NoError(t, v.Struct(&models.Problem{
		Title:           "Cracked housing",
		Description:     "Housings crack during final test",
		ResponsibleTeam: "Quality",
		Status:          models.StatusClosed,
	}))
}

func TestMessagesFormatsParamsAndFallsBack(t *testing.T) {
	v := New()
	type req struct {
		Title string `json:"title" validate:"max=3"`
		Code  string `json:"code" validate:"len=2"`
	}

	err := v.Struct(req{Title: "abcd", Code: "x"})
	require.Error(t, err)
	assert.Equal(t, []string{"Title must be at most 3 characters", "code is invalid"}, Messages(err))

	assert.Nil(t, Messages(nil))
	assert.Equal(t, []string{"boom"}, Messages(errors.New("boom")))
}
