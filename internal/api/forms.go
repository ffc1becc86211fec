package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// parseOptionalInt aceita apenas dígitos; qualquer outra coisa vira
// ausente, espelhando o comportamento do formulário original.
func parseOptionalInt(v string) *int {
	if v == "" {
		return nil
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return nil
		}
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// parseOptionalDate devolve nulo para entrada vazia ou malformada.
func parseOptionalDate(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil
	}
	return &t
}

// parseRequiredDate falha para entrada vazia ou malformada.
func parseRequiredDate(v string) (time.Time, error) {
	return time.Parse(dateLayout, v)
}

// parseMoney trata vazio como 0.
func parseMoney(v string) float64 {
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseCheckbox interpreta o valor enviado, não a mera presença do
// campo: só "on", "true" e "1" valem verdadeiro.
func parseCheckbox(v string) bool {
	switch v {
	case "on", "true", "1":
		return true
	}
	return false
}

// paramID extrai o :id numérico da rota.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}
