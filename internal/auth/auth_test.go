package auth

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/example/manutencao-ar/internal/config"
	"github.com/example/manutencao-ar/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Session{}))
	return gdb
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "segredo-de-teste",
		SessionMinutes: 60,
		SessionCookie:  "manutencao_session",
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("senha-secreta")
	require.NoError(t, err)
	assert.NotEqual(t, "senha-secreta", hash)

	assert.True(t, CheckPassword("senha-secreta", hash))
	assert.False(t, CheckPassword("senha-errada", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken("sessao-123", time.Now().Add(time.Hour), cfg)
	require.NoError(t, err)

	claims, err := ParseToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "sessao-123", claims.SessionID)

	t.Run("segredo errado invalida", func(t *testing.T) {
		outro := testConfig()
		outro.JWTSecret = "outro-segredo"
		_, err := ParseToken(token, outro)
		assert.Error(t, err)
	})

	t.Run("token expirado invalida", func(t *testing.T) {
		expirado, err := GenerateToken("sessao-123", time.Now().Add(-time.Minute), cfg)
		require.NoError(t, err)
		_, err = ParseToken(expirado, cfg)
		assert.Error(t, err)
	})
}

func TestSessionStore(t *testing.T) {
	sessions := NewSessionStore(newTestDB(t))

	t.Run("cria e recupera", func(t *testing.T) {
		sess, err := sessions.Create(7, time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, sess.ID)

		got, err := sessions.Get(sess.ID)
		require.NoError(t, err)
		assert.Equal(t, uint(7), got.UserID)
	})

	t.Run("delete revoga", func(t *testing.T) {
		sess, err := sessions.Create(7, time.Hour)
		require.NoError(t, err)
		require.NoError(t, sessions.Delete(sess.ID))

		_, err = sessions.Get(sess.ID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("expirada não vale", func(t *testing.T) {
		sess, err := sessions.Create(7, -time.Minute)
		require.NoError(t, err)

		_, err = sessions.Get(sess.ID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	sessions := NewSessionStore(newTestDB(t))

	router := gin.New()
	router.GET("/privado", RequireSession(cfg, sessions), func(c *gin.Context) {
		c.String(http.StatusOK, "user=%d", c.GetUint(CtxUserID))
	})

	t.Run("sem cookie redireciona para login", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/privado", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("cookie adulterado redireciona", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/privado", nil)
		req.AddCookie(&http.Cookie{Name: cfg.SessionCookie, Value: "token-invalido"})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("sessão válida passa e carrega o usuário", func(t *testing.T) {
		sess, err := sessions.Create(42, time.Hour)
		require.NoError(t, err)
		token, err := GenerateToken(sess.ID, sess.ExpiresAt, cfg)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/privado", nil)
		req.AddCookie(&http.Cookie{Name: cfg.SessionCookie, Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user=42", w.Body.String())
	})

	t.Run("sessão revogada redireciona mesmo com token válido", func(t *testing.T) {
		sess, err := sessions.Create(42, time.Hour)
		require.NoError(t, err)
		token, err := GenerateToken(sess.ID, sess.ExpiresAt, cfg)
		require.NoError(t, err)
		require.NoError(t, sessions.Delete(sess.ID))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/privado", nil)
		req.AddCookie(&http.Cookie{Name: cfg.SessionCookie, Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
	})
}
