package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderboard/entity"
	"orderboard/utils"
)

const testSecret = "test-secret"

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/any", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c), "role": utils.CurrentRole(c)})
	})
	r.GET("/owner", AuthMiddleware(testSecret, entity.RoleOwner), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/optional", OptionalAuth(testSecret), func(c *gin.Context) {
		if ref := utils.CurrentUserIDRef(c); ref == nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
		} else {
			c.JSON(http.StatusOK, gin.H{"anonymous": false})
		}
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := authRouter()
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/any", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/any", "not-a-jwt").Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	r := authRouter()
	token, err := utils.GenerateToken(1, entity.RoleStaff, "other-secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/any", token).Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	r := authRouter()
	token, err := utils.GenerateToken(1, entity.RoleStaff, testSecret, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/any", token).Code)
}

func TestAuthMiddlewareEnforcesRoles(t *testing.T) {
	r := authRouter()

	staff, err := utils.GenerateToken(2, entity.RoleStaff, testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/owner", staff).Code)

	owner, err := utils.GenerateToken(1, entity.RoleOwner, testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doGet(r, "/owner", owner).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/any", staff).Code)
}

func TestOptionalAuth(t *testing.T) {
	r := authRouter()

	w := doGet(r, "/optional", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"anonymous":true`)

	token, err := utils.GenerateToken(3, entity.RoleStaff, testSecret, time.Hour)
	require.NoError(t, err)
	w = doGet(r, "/optional", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"anonymous":false`)

	// A bad token on the optional path falls back to anonymous.
	w = doGet(r, "/optional", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"anonymous":true`)
}
