//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"netcard-manager/internal/handler/dto/request"
	"netcard-manager/internal/pkg/cookie"
	"netcard-manager/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Login returns the session cookie set by a successful login.
func Login(t *testing.T, router *gin.Engine, req request.LoginRequest) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", req, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session cookie not found in response")
	require.NotEmpty(t, sessionCookie.Value, "Session cookie is empty")

	return sessionCookie
}

func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) *http.Cookie {
	t.Helper()
	return Login(t, router, request.LoginRequest{Username: username, Password: password, Role: "admin"})
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
