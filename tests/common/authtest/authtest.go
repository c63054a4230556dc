//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "hutbook/internal/handler/dto/request"
	resdto "hutbook/internal/handler/dto/response"
	"hutbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin authenticates against the real login endpoint with the
// operator credentials from NewTestConfig.
func LoginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: "admin@example.com", Password: "password"}, "")
	require.Equal(t, http.StatusOK, w.Code, "admin login failed: %s", w.Body.String())

	var res resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}
