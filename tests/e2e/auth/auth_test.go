//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"netcard-manager/internal/domain/user"
	resdto "netcard-manager/internal/handler/dto/response"
	"netcard-manager/internal/pkg/cookie"
	"netcard-manager/tests/common/authtest"
	"netcard-manager/tests/common/builder"
	"netcard-manager/tests/common/httptest"
	"netcard-manager/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		mutate         func(*builder.AuthBuilder)
		expectedStatus int
		expectAdmin    bool
		description    string
	}{
		{
			name:           "利用者ログイン",
			mutate:         func(*builder.AuthBuilder) {},
			expectedStatus: http.StatusOK,
			description:    "任意の認証情報で利用者としてログインできること",
		},
		{
			name:           "管理者ログイン",
			mutate:         func(b *builder.AuthBuilder) { b.AsAdmin() },
			expectedStatus: http.StatusOK,
			expectAdmin:    true,
			description:    "設定された管理者アカウントでログインできること",
		},
		{
			name:           "管理者パスワード誤り",
			mutate:         func(b *builder.AuthBuilder) { b.AsAdmin().Password = "wrongpassword" },
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードで管理者ログインできないこと",
		},
		{
			name:           "管理者ユーザー名誤り",
			mutate:         func(b *builder.AuthBuilder) { b.AsAdmin().Username = "root" },
			expectedStatus: http.StatusUnauthorized,
			description:    "設定外のユーザー名で管理者ログインできないこと",
		},
		{
			name:           "空のユーザー名",
			mutate:         func(b *builder.AuthBuilder) { b.Username = "" },
			expectedStatus: http.StatusBadRequest,
			description:    "空のユーザー名は拒否されること",
		},
		{
			name:           "空白のみのユーザー名",
			mutate:         func(b *builder.AuthBuilder) { b.Username = "   " },
			expectedStatus: http.StatusBadRequest,
			description:    "空白のみのユーザー名は拒否されること",
		},
		{
			name:           "不明なロール",
			mutate:         func(b *builder.AuthBuilder) { b.Role = "operator" },
			expectedStatus: http.StatusBadRequest,
			description:    "未知のロールは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			b := builder.NewAuthBuilder()
			tt.mutate(b)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, b.BuildDTO(), "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
				res := httptest.DecodeJSON[resdto.LoginResponse](t, w)
				require.NotEmpty(t, res.AccessToken, "アクセストークンが空")
				require.Equal(t, tt.expectAdmin, res.User.IsAdmin)
				require.NotNil(t, httptest.ExtractCookie(w, cookie.SessionCookieName), "セッションCookieが設定されていない")
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("Cookieでセッションを取得できること", func() {
		t := s.T()
		c := authtest.Login(t, s.Router, builder.NewAuthBuilder().BuildDTO())

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, []*http.Cookie{c}, "")
		require.Equal(t, http.StatusOK, w.Code)
		res := httptest.DecodeJSON[resdto.MeResponse](t, w)
		require.Equal(t, "guest", res.User.Username)
	})

	s.Run("Bearerトークンでセッションを取得できること", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, "admin", user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, httptest.DecodeJSON[resdto.MeResponse](t, w).User.IsAdmin)
	})

	s.Run("期限切れトークンは拒否されること", func() {
		t := s.T()
		token := s.jwtHelper.CreateExpiredToken(t, "guest", user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("トークンなしは拒否されること", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでCookieが削除されること", func() {
		t := s.T()
		c := authtest.Login(t, s.Router, builder.NewAuthBuilder().BuildDTO())

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, []*http.Cookie{c}, "")
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.SessionCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	// tokens are stateless, so the same cookie stays valid until it expires
	s.Run("同じCookieで繰り返しログアウトできること", func() {
		t := s.T()
		c := authtest.Login(t, s.Router, builder.NewAuthBuilder().BuildDTO())

		authtest.LogoutUser(t, s.Router, []*http.Cookie{c})
		authtest.LogoutUser(t, s.Router, []*http.Cookie{c})
	})

	s.Run("未認証のログアウトは拒否されること", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}
