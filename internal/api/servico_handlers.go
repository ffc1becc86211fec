package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/example/manutencao-ar/internal/store"
)

func servicoInputFromForm(c *gin.Context, equipamentoID uint) (store.ServicoInput, error) {
	dataExec, err := parseRequiredDate(c.PostForm("data_execucao"))
	if err != nil {
		return store.ServicoInput{}, store.ErrValidation
	}
	return store.ServicoInput{
		EquipamentoID:       equipamentoID,
		DataExecucao:        dataExec,
		TipoServico:         c.PostForm("tipo_servico"),
		PrestadorServico:    c.PostForm("prestador_servico"),
		Descricao:           c.PostForm("descricao"),
		HouveReposicaoPecas: parseCheckbox(c.PostForm("houve_reposicao_pecas")),
		QuaisPecas:          c.PostForm("quais_pecas"),
		ValorServico:        parseMoney(c.PostForm("valor_servico")),
		ValorPecas:          parseMoney(c.PostForm("valor_pecas")),
	}, nil
}

func equipmentURL(id uint) string {
	return fmt.Sprintf("/equipment/%d", id)
}

func (s *Server) addServico(c *gin.Context) {
	equipID, err := strconv.Atoi(c.PostForm("equipamento_id"))
	if err != nil || equipID < 1 {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}

	in, err := servicoInputFromForm(c, uint(equipID))
	if err != nil {
		setFlash(c, "Informe uma data de execução válida.")
		c.Redirect(http.StatusFound, equipmentURL(uint(equipID)))
		return
	}

	if _, err := s.servicos.Create(in); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.HTML(http.StatusNotFound, "notfound.html", nil)
			return
		case errors.Is(err, store.ErrValidation):
			setFlash(c, "Preencha os campos obrigatórios do serviço.")
		default:
			s.log.WithError(err).Error("erro ao gravar serviço")
			setFlash(c, "Erro ao gravar serviço.")
		}
	}
	c.Redirect(http.StatusFound, equipmentURL(uint(equipID)))
}

func (s *Server) editServico(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}
	sv, err := s.servicos.Get(id)
	if err != nil {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}
	c.HTML(http.StatusOK, "servico_edit.html", gin.H{
		"Servico": sv,
		"Flash":   popFlash(c),
	})
}

func (s *Server) updateServico(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}
	sv, err := s.servicos.Get(id)
	if err != nil {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}

	in, err := servicoInputFromForm(c, sv.EquipamentoID)
	if err != nil {
		setFlash(c, "Informe uma data de execução válida.")
		c.Redirect(http.StatusFound, equipmentURL(sv.EquipamentoID))
		return
	}

	if _, err := s.servicos.Update(id, in); err != nil {
		if errors.Is(err, store.ErrValidation) {
			setFlash(c, "Preencha os campos obrigatórios do serviço.")
		} else {
			s.log.WithError(err).Error("erro ao atualizar serviço")
			setFlash(c, "Erro ao atualizar serviço.")
		}
	}
	c.Redirect(http.StatusFound, equipmentURL(sv.EquipamentoID))
}

func (s *Server) deleteServico(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}

	// O formulário envia o equipamento dono para sabermos voltar.
	equipID, err := strconv.Atoi(c.PostForm("equipamento_id"))
	if err != nil || equipID < 1 {
		c.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}

	if err := s.servicos.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", nil)
			return
		}
		s.log.WithError(err).Error("erro ao apagar serviço")
		setFlash(c, "Erro ao apagar serviço.")
	}
	c.Redirect(http.StatusFound, equipmentURL(uint(equipID)))
}
