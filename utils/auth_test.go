package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(secret, "user-1", "admin", time.Hour)
	require.NoError(t, err)

	userID, role, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "admin", role)
}

func TestTokenRejections(t *testing.T) {
	secret := "test-secret"

	_, err := GenerateToken("", "user-1", "customer", time.Hour)
	assert.Error(t, err, "empty secret must fail")

	expired, err := GenerateToken(secret, "user-1", "customer", -time.Minute)
	require.NoError(t, err)
	_, _, err = ParseToken(secret, expired)
	assert.Error(t, err, "expired token must not parse")

	token, err := GenerateToken(secret, "user-1", "customer", time.Hour)
	require.NoError(t, err)
	_, _, err = ParseToken("other-secret", token)
	assert.Error(t, err, "wrong secret must not parse")
}

func TestGenerateResetTokenUnique(t *testing.T) {
	a, err := GenerateResetToken()
	require.NoError(t, err)
	b, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := "test-secret"

	r := gin.New()
	r.GET("/protected", AuthMiddleware(secret), func(c *gin.Context) {
		userID, _ := c.Get("userId")
		c.JSON(200, gin.H{"userId": userID})
	})
	r.GET("/admin", AuthMiddleware(secret), AdminMiddleware(), func(c *gin.Context) {
		c.Status(200)
	})

	do := func(path, header string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	customerToken, err := GenerateToken(secret, "user-1", "customer", time.Hour)
	require.NoError(t, err)
	adminToken, err := GenerateToken(secret, "user-2", "admin", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 401, do("/protected", ""))
	assert.Equal(t, 401, do("/protected", "Bearer not-a-token"))
	assert.Equal(t, 200, do("/protected", "Bearer "+customerToken))
	assert.Equal(t, 403, do("/admin", "Bearer "+customerToken))
	assert.Equal(t, 200, do("/admin", "Bearer "+adminToken))
}
