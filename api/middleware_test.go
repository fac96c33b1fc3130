package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esportshub/auth"
	"esportshub/models"
)

func authedRouter(tokens TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Auth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, identity(c))
	})
	r.GET("/admin-only", Auth(tokens), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := authedRouter(tokens)

	token, err := tokens.Issue(&models.User{ID: 7, Name: "ada", Role: models.RolePlayer})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"ada"`)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := authedRouter(auth.NewTokenService("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), string(models.CodeMissingCredential))
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	router := authedRouter(auth.NewTokenService("test-secret"))

	token, err := auth.NewTokenService("other-secret").Issue(&models.User{ID: 7})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), string(models.CodeInvalidCredential))
}

func TestRequireAdmin_PlayerRejected(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := authedRouter(tokens)

	token, err := tokens.Issue(&models.User{ID: 7, Role: models.RolePlayer})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := authedRouter(tokens)

	token, err := tokens.Issue(&models.User{ID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, httpStatus(models.CodeExpiredCredential))
	assert.Equal(t, http.StatusForbidden, httpStatus(models.CodeForbidden))
	assert.Equal(t, http.StatusNotFound, httpStatus(models.CodeNotFound))
	assert.Equal(t, http.StatusNotFound, httpStatus(models.CodeNotEnrolled))
	assert.Equal(t, http.StatusConflict, httpStatus(models.CodeConflict))
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(models.CodeInvalidGameType))
	assert.Equal(t, http.StatusBadRequest, httpStatus(models.CodeBadRequest))
	assert.Equal(t, http.StatusInternalServerError, httpStatus(models.CodePartialFailure))
	assert.Equal(t, http.StatusInternalServerError, httpStatus(models.CodeStoreUnavailable))
}
