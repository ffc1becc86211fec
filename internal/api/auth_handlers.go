package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/manutencao-ar/internal/auth"
	"github.com/example/manutencao-ar/internal/store"
)

const msgLoginFalhou = "Login falhou. Verifique o utilizador e a senha."

func (s *Server) loginPage(c *gin.Context) {
	if s.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Flash": popFlash(c)})
}

func (s *Server) loginSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := s.authenticate(username, password)
	if err != nil {
		// Mesma mensagem para usuário inexistente e senha errada.
		setFlash(c, msgLoginFalhou)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	ttl := time.Duration(s.cfg.SessionMinutes) * time.Minute
	sess, err := s.sessions.Create(user.ID, ttl)
	if err != nil {
		s.log.WithError(err).Error("erro ao criar sessão")
		setFlash(c, "Erro interno. Tente novamente.")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	token, err := auth.GenerateToken(sess.ID, sess.ExpiresAt, s.cfg)
	if err != nil {
		s.log.WithError(err).Error("erro ao gerar token")
		setFlash(c, "Erro interno. Tente novamente.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetCookie(s.cfg.SessionCookie, token, s.cfg.SessionMinutes*60, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// authenticate resolve o usuário conforme o backend configurado.
func (s *Server) authenticate(username, password string) (user *userRef, err error) {
	if username == "" || password == "" {
		return nil, auth.ErrInvalidCredentials
	}

	if s.cfg.AuthBackend == "ldap" {
		if _, err := auth.LDAPAuthenticate(username, password, s.cfg); err != nil {
			return nil, auth.ErrInvalidCredentials
		}
		// Primeiro login via LDAP cria a linha local do usuário.
		u, err := s.users.FindByUsername(username)
		if errors.Is(err, store.ErrNotFound) {
			u, err = s.users.Create(username, "ldap")
		}
		if err != nil {
			return nil, err
		}
		return &userRef{ID: u.ID, Username: u.Username}, nil
	}

	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}
	return &userRef{ID: u.ID, Username: u.Username}, nil
}

type userRef struct {
	ID       uint
	Username string
}

func (s *Server) registerPage(c *gin.Context) {
	if s.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "register.html", gin.H{"Flash": popFlash(c)})
}

func (s *Server) registerSubmit(c *gin.Context) {
	if s.cfg.AuthBackend == "ldap" {
		setFlash(c, "Registro desabilitado neste servidor.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		setFlash(c, "Preencha utilizador e senha.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		s.log.WithError(err).Error("erro ao gerar hash de senha")
		setFlash(c, "Erro ao criar conta.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if _, err := s.users.Create(username, hash); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			setFlash(c, "Este nome de utilizador já existe. Escolha outro.")
		} else {
			s.log.WithError(err).Error("erro ao criar usuário")
			setFlash(c, "Erro ao criar conta.")
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	setFlash(c, "Conta criada com sucesso! Pode fazer login.")
	c.Redirect(http.StatusFound, "/login")
}

func (s *Server) logout(c *gin.Context) {
	if sid := c.GetString(auth.CtxSessionID); sid != "" {
		if err := s.sessions.Delete(sid); err != nil {
			s.log.WithError(err).Warn("erro ao revogar sessão")
		}
	}
	c.SetCookie(s.cfg.SessionCookie, "", -1, "/", "", false, true)
	setFlash(c, "Logout efetuado com sucesso.")
	c.Redirect(http.StatusFound, "/login")
}

// isAuthenticated verifica o cookie sem exigir sessão (páginas de
// login/registro redirecionam usuários já logados).
func (s *Server) isAuthenticated(c *gin.Context) bool {
	tokenStr, err := c.Cookie(s.cfg.SessionCookie)
	if err != nil || tokenStr == "" {
		return false
	}
	claims, err := auth.ParseToken(tokenStr, s.cfg)
	if err != nil {
		return false
	}
	_, err = s.sessions.Get(claims.SessionID)
	return err == nil
}
