//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "hutbook/internal/handler/dto/request"
	resdto "hutbook/internal/handler/dto/response"
	"hutbook/tests/common/httptest"
	"hutbook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const loginURL = "/api/auth/login"

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
	s.Run("operator can log in and reach admin endpoints", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "admin@example.com", Password: "password"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var res resdto.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.Token)

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/bookings/sweep", nil, res.Token)
		require.Equal(t, http.StatusOK, aw.Code)
	})

	s.Run("wrong password is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "admin@example.com", Password: "wrong"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid credentials")
	})

	s.Run("admin endpoints reject missing tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/bookings/sweep", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}
