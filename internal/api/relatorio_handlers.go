package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) relatoriosPage(c *gin.Context) {
	totais, err := s.relatorios.Totais()
	if err != nil {
		s.log.WithError(err).Error("erro ao calcular totais")
		setFlash(c, "Erro ao gerar relatórios.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	porEquipamento, err := s.relatorios.PorEquipamento()
	if err != nil {
		s.log.WithError(err).Error("erro no relatório por equipamento")
		setFlash(c, "Erro ao gerar relatórios.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	comPecas, err := s.relatorios.ServicosComPecas()
	if err != nil {
		s.log.WithError(err).Error("erro no relatório de peças")
		setFlash(c, "Erro ao gerar relatórios.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "relatorios.html", gin.H{
		"Totais":           totais,
		"PorEquipamento":   porEquipamento,
		"ServicosComPecas": comPecas,
	})
}
