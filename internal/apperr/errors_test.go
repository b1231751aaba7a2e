package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("start state is required")

	assert.Equal(t, "start state is required", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("unknown direction %q", "U")
	err := apperr.NewValidationWrap("line 3", inner)

	assert.Equal(t, `line 3: unknown direction "U"`, err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("blank symbol not in tape alphabet")

	wrapped := fmt.Errorf("failed to build machine: %w", original)
	doubleWrapped := fmt.Errorf("create session: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	assert.Equal(t, "blank symbol not in tape alphabet", ve.Message)
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("storage error: %w", plain)

	var ve *apperr.ValidationError
	assert.False(t, errors.As(wrapped, &ve))
}

func TestNotFound(t *testing.T) {
	err := apperr.NewNotFound("session", "abc")
	assert.Equal(t, "session abc not found", err.Error())
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		method string
		err    error
		status int
		body   string
	}{
		{name: "validation", err: fmt.Errorf("wrap: %w", apperr.NewValidation("bad rule")), status: http.StatusBadRequest, body: `{"error":"bad rule","title":"validation error"}`},
		{name: "not found", err: apperr.NewNotFound("run", "1"), status: http.StatusNotFound, body: `{"error":"run 1 not found","title":"not found"}`},
		{name: "echo http error", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), status: http.StatusMethodNotAllowed, body: `{"error":"nope"}`},
		{name: "plain", err: errors.New("boom"), status: http.StatusInternalServerError, body: `{"error":"internal server error"}`},
		{name: "head has no body", method: http.MethodHead, err: apperr.NewNotFound("run", "1"), status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			e := echo.New()
			req := httptest.NewRequest(method, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			apperr.GlobalErrorHandler()(tt.err, c)
			assert.Equal(t, tt.status, rec.Code)
			if tt.body == "" {
				assert.Empty(t, rec.Body.String())
				return
			}
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestGlobalErrorHandler_Committed(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	apperr.GlobalErrorHandler()(errors.New("late"), c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
