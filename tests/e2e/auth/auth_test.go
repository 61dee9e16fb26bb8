//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"stayops/internal/handler/dto/request"
	"stayops/internal/usecase/queries"
	"stayops/tests/common/authtest"
	"stayops/tests/common/httptest"
	"stayops/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/v1/auth/login"
	refreshURL = "/api/v1/auth/refresh"
	meURL      = "/api/v1/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: valid credentials yield tokens and user info", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie)
		require.NotEmpty(t, accessCookie.Value)

		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)
		require.NotEmpty(t, refreshCookie.Value)
	})

	s.Run("Error case: wrong password is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.com", Password: "wrong-password"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown user is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "nobody@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: authenticated user sees their own profile", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "viewer@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me queries.AuthorizedUserView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "viewer@example.com", me.Email)
		require.Equal(t, "viewer", me.Role)
		require.True(t, me.IsActive)
	})

	s.Run("Error case: missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestRefreshAndLogout() {
	s.Run("Normal case: refresh cookie yields a fresh access token", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "operator@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		cookies := httptest.ExtractCookies(lw)
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.NotEmpty(t, body["access_token"])
	})

	s.Run("Error case: refresh without a token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Normal case: logout clears the auth cookies", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "operator@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(lw))
	})
}
