package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestValidator_BacklogEdit(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		req     BacklogEditRequest
		wantErr map[string]string
	}{
		{"only id", BacklogEditRequest{ID: "B-0001"}, nil},
		{"all fields", BacklogEditRequest{ID: "B-0001", Title: strPtr("x"), Category: strPtr("ship"), Impact: intPtr(5), EffortMinutes: intPtr(20)}, nil},
		{"missing id", BacklogEditRequest{}, map[string]string{"id": "This field is required"}},
		{"bad category", BacklogEditRequest{ID: "B-0001", Category: strPtr("art")}, map[string]string{"category": "Categoria invalida"}},
		{"impact too high", BacklogEditRequest{ID: "B-0001", Impact: intPtr(6)}, map[string]string{"impact": "Must be at most 5"}},
		{"impact too low", BacklogEditRequest{ID: "B-0001", Impact: intPtr(0)}, map[string]string{"impact": "Must be at least 1"}},
		{"zero effort", BacklogEditRequest{ID: "B-0001", EffortMinutes: intPtr(0)}, map[string]string{"effort_minutes": "Must be greater than 0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, FormatValidationError(err))
		})
	}
}

func TestValidator_Spin(t *testing.T) {
	v := GetValidator()

	for _, source := range []string{"", "daily", "levelup", "paid", "premium"} {
		assert.NoError(t, v.ValidateStruct(SpinRequest{Source: source}), source)
	}

	err := v.ValidateStruct(SpinRequest{Source: "free"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"source": "Must be one of: daily levelup paid premium"}, FormatValidationError(err))
}

func TestValidator_Step(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(StepRequest{Index: intPtr(0)}))
	assert.Error(t, v.ValidateStruct(StepRequest{}))
	assert.Error(t, v.ValidateStruct(StepRequest{Index: intPtr(-1)}))
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
