package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/taskvault/taskvault-server/internal/model"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: model.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("%w: email is required", model.ErrValidation), wantStatus: http.StatusBadRequest},
		{name: "email taken", err: model.ErrEmailTaken, wantStatus: http.StatusBadRequest},
		{name: "invalid credentials", err: model.ErrInvalidCredentials, wantStatus: http.StatusBadRequest},
		{name: "unauthenticated", err: model.ErrUnauthenticated, wantStatus: http.StatusUnauthorized},
		{name: "invalid token", err: model.ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{name: "not found", err: model.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "unknown", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			handleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}
