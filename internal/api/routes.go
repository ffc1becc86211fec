package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/manutencao-ar/internal/auth"
	"github.com/example/manutencao-ar/internal/config"
	"github.com/example/manutencao-ar/internal/monitoring"
	"github.com/example/manutencao-ar/internal/web"
)

// RegisterRoutes registra todas as rotas da aplicação.
func RegisterRoutes(r *gin.Engine, s *Server, cfg *config.Config, metrics *monitoring.Metrics) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	if metrics != nil {
		r.Use(metrics.Middleware())
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Auth
	r.GET("/login", s.loginPage)
	r.POST("/login", s.loginSubmit)
	r.GET("/register", s.registerPage)
	r.POST("/register", s.registerSubmit)

	// Rotas protegidas
	authed := r.Group("/")
	authed.Use(auth.RequireSession(cfg, s.sessions))
	{
		authed.GET("/logout", s.logout)

		authed.GET("/", s.index)
		authed.POST("/equipment/add", s.addEquipamento)
		authed.GET("/equipment/:id", s.detalheEquipamento)
		authed.GET("/equipment/edit/:id", s.editEquipamento)
		authed.POST("/equipment/update/:id", s.updateEquipamento)
		authed.POST("/equipment/delete/:id", s.deleteEquipamento)

		authed.POST("/service/add", s.addServico)
		authed.GET("/service/edit/:id", s.editServico)
		authed.POST("/service/update/:id", s.updateServico)
		authed.POST("/service/delete/:id", s.deleteServico)

		authed.GET("/reports", s.relatoriosPage)
	}

	// Healthcheck simples
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
