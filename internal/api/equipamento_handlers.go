package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/manutencao-ar/internal/store"
)

func (s *Server) index(c *gin.Context) {
	equipamentos, err := s.equipamentos.List()
	if err != nil {
		s.log.WithError(err).Error("erro ao listar equipamentos")
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"Flash": "Erro ao carregar equipamentos.",
		})
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Equipamentos": equipamentos,
		"Flash":        popFlash(c),
	})
}

func equipamentoInputFromForm(c *gin.Context) store.EquipamentoInput {
	return store.EquipamentoInput{
		MarcaModelo:       c.PostForm("marca_modelo"),
		LocalInstalado:    c.PostForm("local_instalado"),
		CapacidadeBTU:     parseOptionalInt(c.PostForm("capacidade_btu")),
		ProximaManutencao: parseOptionalDate(c.PostForm("proxima_manutencao")),
	}
}

func (s *Server) addEquipamento(c *gin.Context) {
	if _, err := s.equipamentos.Create(equipamentoInputFromForm(c)); err != nil {
		if errors.Is(err, store.ErrValidation) {
			setFlash(c, "Preencha marca/modelo e local instalado.")
		} else {
			s.log.WithError(err).Error("erro ao gravar equipamento")
			setFlash(c, "Erro ao gravar equipamento.")
		}
	}
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) detalheEquipamento(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}
	eq, err := s.equipamentos.GetComServicos(id)
	if err != nil {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}
	c.HTML(http.StatusOK, "equipamento_detalhe.html", gin.H{
		"Equipamento": eq,
		"Flash":       popFlash(c),
	})
}

func (s *Server) editEquipamento(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}
	eq, err := s.equipamentos.Get(id)
	if err != nil {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}
	c.HTML(http.StatusOK, "equipamento_edit.html", gin.H{
		"Equipamento": eq,
		"Flash":       popFlash(c),
	})
}

func (s *Server) updateEquipamento(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}
	if _, err := s.equipamentos.Update(id, equipamentoInputFromForm(c)); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.HTML(http.StatusNotFound, "notfound.html", nil)
			return
		case errors.Is(err, store.ErrValidation):
			setFlash(c, "Preencha marca/modelo e local instalado.")
		default:
			s.log.WithError(err).Error("erro ao atualizar equipamento")
			setFlash(c, "Erro ao atualizar equipamento.")
		}
	}
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) deleteEquipamento(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}
	if err := s.equipamentos.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", nil)
			return
		}
		s.log.WithError(err).Error("erro ao apagar equipamento")
		setFlash(c, "Erro ao apagar equipamento.")
	}
	c.Redirect(http.StatusFound, "/")
}
