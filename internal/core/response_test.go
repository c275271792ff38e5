// AngelaMos | 2026
// response_test.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page, limit, total int
		want               Pagination
	}{
		{2, 10, 15, Pagination{Page: 2, Limit: 10, Total: 15, TotalPages: 2}},
		{1, 10, 0, Pagination{Page: 1, Limit: 10, Total: 0, TotalPages: 0}},
		{1, 10, 10, Pagination{Page: 1, Limit: 10, Total: 10, TotalPages: 1}},
		{1, 10, 11, Pagination{Page: 1, Limit: 10, Total: 11, TotalPages: 2}},
	}

	for _, tt := range tests {
		got := NewPagination(tt.page, tt.limit, tt.total)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("NewPagination(%d, %d, %d) diff: -want, +got:\n%s",
				tt.page, tt.limit, tt.total, diff)
		}
	}
}

func TestJSONError_Envelope(t *testing.T) {
	rr := httptest.NewRecorder()
	NotFound(rr, "Booking")

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"success":false,"error":{"code":"NOT_FOUND","message":"Booking not found"}}`,
		rr.Body.String())
}

func TestInternalServerError_HidesCause(t *testing.T) {
	rr := httptest.NewRecorder()
	InternalServerError(rr, errors.New("pq: password authentication failed"), "Failed to fetch users")

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
	assert.Equal(t, "Failed to fetch users", resp.Error.Message)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestAppError_Unwraps(t *testing.T) {
	err := fmt.Errorf("handler: %w", ConflictError("taken"))

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.StatusCode)
	assert.ErrorIs(t, err, ErrConflict)
	assert.False(t, errors.As(ErrNotFound, &appErr))
}

func TestFormatValidationError(t *testing.T) {
	type payload struct {
		Email  string `json:"email"  validate:"required,email"`
		Status string `json:"status" validate:"oneof=pending paid"`
		Count  int    `json:"count"  validate:"max=3"`
	}

	err := NewValidator().Struct(payload{Email: "", Status: "nope", Count: 9})
	require.Error(t, err)

	assert.Equal(t,
		"email is required; status must be one of: pending paid; count must be at most 3",
		FormatValidationError(err))
	assert.Equal(t, "invalid request", FormatValidationError(errors.New("other")))
}
