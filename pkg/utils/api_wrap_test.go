package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandleServiceError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err      error
		code     int
		contains string
	}{
		{ErrUsernameTaken, http.StatusBadRequest, "username already registered"},
		{ErrEmailTaken, http.StatusBadRequest, "email already registered"},
		{ErrDuplicateUser, http.StatusBadRequest, "username or email already registered"},
		{ErrInactiveUser, http.StatusBadRequest, "inactive user"},
		{ErrInvalidRole, http.StatusBadRequest, "invalid role"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "incorrect username or password"},
		{ErrInvalidToken, http.StatusUnauthorized, "could not validate credentials"},
		{ErrForbidden, http.StatusForbidden, "not enough permissions"},
		{ErrUserNotFound, http.StatusNotFound, "user not found"},
		{ErrDatabaseError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		HandleServiceError(c, tc.err)
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
		assert.Contains(t, rec.Body.String(), tc.contains, "error %v", tc.err)
	}
}
