package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/manutencao-ar/internal/config"
)

// Chaves usadas no contexto da requisição pelo RequireSession.
const (
	CtxUserID    = "userID"
	CtxSessionID = "sessionID"
)

// RequireSession valida o token assinado do cookie de sessão e carrega
// a sessão do servidor. Visitantes não autenticados são redirecionados
// para /login; após o login a navegação recomeça na lista de
// equipamentos.
func RequireSession(cfg *config.Config, sessions *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cfg.SessionCookie)
		if err != nil || tokenStr == "" {
			redirectToLogin(c)
			return
		}
		claims, err := ParseToken(tokenStr, cfg)
		if err != nil {
			redirectToLogin(c)
			return
		}
		sess, err := sessions.Get(claims.SessionID)
		if err != nil {
			redirectToLogin(c)
			return
		}
		c.Set(CtxUserID, sess.UserID)
		c.Set(CtxSessionID, sess.ID)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
