package errors

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponse_JSON(t *testing.T) {
	body, err := json.Marshal(NewErrorResponse("req-1", ErrVehicleNotFound.ErrorCode(), ErrVehicleNotFound.Message(), nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"error": {"code": "`+ErrVehicleNotFound.ErrorCode()+`", "message": "`+ErrVehicleNotFound.Message()+`"},
		"meta": {"request_id": "req-1"}
	}`, string(body))
}

func TestNewErrorResponse_ValidationDetails(t *testing.T) {
	details := map[string]string{"price": "must be greater than 0"}

	body, err := json.Marshal(NewErrorResponse("req-2", "VALIDATION_FAILED", "invalid input", details))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"error": {"code": "VALIDATION_FAILED", "message": "invalid input", "details": {"price": "must be greater than 0"}},
		"meta": {"request_id": "req-2"}
	}`, string(body))
}

func TestNewSuccessResponse_JSON(t *testing.T) {
	body, err := json.Marshal(NewSuccessResponse("", []string{"a"}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"data": ["a"], "meta": {"request_id": ""}}`, string(body))
}
