package api

import "github.com/gin-gonic/gin"

const flashCookie = "manutencao_flash"

// setFlash grava um aviso de uma única leitura para a próxima página.
// As camadas de negócio devolvem erros tipados; só aqui eles viram
// texto para o usuário.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

// popFlash lê e apaga o aviso pendente, se houver.
func popFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}
