// internal/pkg/apierrors/errors_test.go
package apierrors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront/internal/pkg/apierrors"
)

func TestFromPayloadClassification(t *testing.T) {
	t.Run("404 -> NotFoundError", func(t *testing.T) {
		err := apierrors.FromPayload(http.StatusNotFound, apierrors.ErrorPayload{Message: "Not found", Resource: "Product"})
		var notFound *apierrors.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Not found", notFound.Message)
		assert.Equal(t, "Product", notFound.Resource)
	})

	t.Run("400 with fields -> ValidationError", func(t *testing.T) {
		err := apierrors.FromPayload(http.StatusBadRequest, apierrors.ErrorPayload{
			Message: "Invalid input",
			Fields:  map[string]string{"email": "required"},
		})
		var validation *apierrors.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "required", validation.Fields["email"])
	})

	t.Run("400 without fields -> APIError", func(t *testing.T) {
		err := apierrors.FromPayload(http.StatusBadRequest, apierrors.ErrorPayload{Message: "Bad request"})
		var api *apierrors.APIError
		require.ErrorAs(t, err, &api)
		assert.Equal(t, http.StatusBadRequest, api.Status)
	})

	t.Run("401 -> AuthenticationError", func(t *testing.T) {
		err := apierrors.FromPayload(http.StatusUnauthorized, apierrors.ErrorPayload{Message: "Unauthorized"})
		var auth *apierrors.AuthenticationError
		require.ErrorAs(t, err, &auth)
	})

	t.Run("other status -> APIError with code", func(t *testing.T) {
		err := apierrors.FromPayload(http.StatusConflict, apierrors.ErrorPayload{Message: "Conflict", Code: "DUPLICATE"})
		var api *apierrors.APIError
		require.ErrorAs(t, err, &api)
		assert.Equal(t, "DUPLICATE", api.Code)
		assert.Equal(t, http.StatusConflict, api.Status)
	})
}

func TestFromStatusMessage(t *testing.T) {
	err := apierrors.FromStatus(http.StatusBadGateway)
	assert.Equal(t, "HTTP Error 502", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, apierrors.HTTPStatus(&apierrors.NotFoundError{Message: "x"}))
	assert.Equal(t, http.StatusBadRequest, apierrors.HTTPStatus(&apierrors.ValidationError{Message: "x"}))
	assert.Equal(t, http.StatusUnauthorized, apierrors.HTTPStatus(&apierrors.AuthenticationError{Message: "x"}))
	assert.Equal(t, http.StatusBadGateway, apierrors.HTTPStatus(apierrors.NewNetworkError(errors.New("refused"))))
	assert.Equal(t, http.StatusTeapot, apierrors.HTTPStatus(apierrors.NewAPIError("x", http.StatusTeapot, "")))
	assert.Equal(t, http.StatusInternalServerError, apierrors.HTTPStatus(errors.New("plain")))
}

func TestFriendlyMessage(t *testing.T) {
	assert.Equal(t, "Not found", apierrors.FriendlyMessage(&apierrors.NotFoundError{Message: "Not found"}))
	assert.Equal(t, "boom", apierrors.FriendlyMessage(errors.New("boom")))
	assert.Equal(t, "Something went wrong. Please try again.", apierrors.FriendlyMessage(nil))
}

func TestPayloadRoundTrip(t *testing.T) {
	original := apierrors.ErrorPayload{
		Message: "Invalid order",
		Fields:  map[string]string{"email": "must be a valid email"},
	}
	err := apierrors.FromPayload(http.StatusBadRequest, original)
	rendered := apierrors.Payload(err)
	assert.Equal(t, original.Message, rendered.Message)
	assert.Equal(t, original.Fields, rendered.Fields)
}
