package apierror_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jimyag/vml/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("Error_Error", func(t *testing.T) {
		t.Parallel()
		err := apierror.NewError("TestError", "test message")
		assert.Equal(t, "[TestError] test message", err.Error())
	})

	t.Run("Error_Error_WithRawError", func(t *testing.T) {
		t.Parallel()
		rawErr := fmt.Errorf("raw error")
		err := apierror.NewErrorWithRaw("TestError", "test message", rawErr)
		assert.Equal(t, "[TestError] test message (RawError: raw error)", err.Error())
	})

	t.Run("Error_Is_SameCode", func(t *testing.T) {
		t.Parallel()
		err1 := apierror.NewError("TestError", "message 1")
		err2 := apierror.NewError("TestError", "message 2")
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("Error_Is_DifferentCode", func(t *testing.T) {
		t.Parallel()
		err1 := apierror.NewError("TestError", "message")
		err2 := apierror.NewError("DifferentError", "message")
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("Error_Is_WithPredefinedError", func(t *testing.T) {
		t.Parallel()
		// 携带资源 ID 的实例可以和基础变量比较
		err := apierror.ServerNotFound("srv-123")
		assert.True(t, errors.Is(err, apierror.ErrServerNotFound))
		assert.False(t, errors.Is(err, apierror.ErrServerDeleted))
	})

	t.Run("Error_Unwrap", func(t *testing.T) {
		t.Parallel()
		rawErr := fmt.Errorf("raw error")
		err := apierror.WrapError(apierror.ErrInternalError, "query failed", rawErr)
		assert.Equal(t, rawErr, errors.Unwrap(err))
		assert.True(t, errors.Is(err, apierror.ErrInternalError))
	})
}

func TestPredefinedErrors(t *testing.T) {
	t.Parallel()

	t.Run("status codes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, http.StatusNotFound, apierror.ErrServerNotFound.HTTPStatus)
		assert.Equal(t, http.StatusNotFound, apierror.ErrFlavorNotFound.HTTPStatus)
		assert.Equal(t, http.StatusNotFound, apierror.ErrImageNotFound.HTTPStatus)
		assert.Equal(t, http.StatusConflict, apierror.ErrInvalidStateTransition.HTTPStatus)
		assert.Equal(t, http.StatusConflict, apierror.ErrServerDeleted.HTTPStatus)
		assert.Equal(t, http.StatusConflict, apierror.ErrConcurrentUpdate.HTTPStatus)
		assert.Equal(t, http.StatusUnprocessableEntity, apierror.ErrValidation.HTTPStatus)
		assert.Equal(t, http.StatusNotImplemented, apierror.ErrNotImplemented.HTTPStatus)
		assert.Equal(t, http.StatusInternalServerError, apierror.ErrInternalError.HTTPStatus)
	})

	t.Run("constructors carry resource id", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, apierror.ServerNotFound("srv-1").Message, "srv-1")
		assert.Contains(t, apierror.FlavorNotFound("f-1").Message, "f-1")
		assert.Contains(t, apierror.ImageNotFound("img-1").Message, "img-1")
		assert.Contains(t, apierror.ServerDeleted("srv-1").Message, "srv-1")
		assert.Contains(t, apierror.ConcurrentUpdate("srv-1").Message, "srv-1")
	})

	t.Run("invalid state transition details", func(t *testing.T) {
		t.Parallel()
		err := apierror.InvalidStateTransition("SHUTOFF", "stop")
		details, ok := err.Details.(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "SHUTOFF", details["current_status"])
		assert.Equal(t, "stop", details["action"])
	})
}

func TestErrorResponse_JSON(t *testing.T) {
	t.Parallel()

	t.Run("serializes to error envelope", func(t *testing.T) {
		t.Parallel()
		resp := apierror.NewErrorResponse(apierror.ServerNotFound("srv-42"))

		data, err := json.Marshal(resp)
		require.NoError(t, err)

		var decoded map[string]map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "SERVER_NOT_FOUND", decoded["error"]["code"])
		assert.Equal(t, "Server srv-42 not found", decoded["error"]["message"])
		assert.Nil(t, decoded["error"]["details"])
	})

	t.Run("http status and raw error are not serialized", func(t *testing.T) {
		t.Parallel()
		err := apierror.WrapError(apierror.ErrInternalError, "boom", fmt.Errorf("secret"))
		data, jsonErr := json.Marshal(apierror.NewErrorResponse(err))
		require.NoError(t, jsonErr)
		assert.NotContains(t, string(data), "secret")
		assert.NotContains(t, string(data), "500")
	})
}
