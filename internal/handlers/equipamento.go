package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AddEquipamento vincula um equipamento ao técnico logado. O dono do vínculo
// vem sempre da sessão, nunca do formulário.
func (h *Handler) AddEquipamento(c *gin.Context) {
	nome := strings.TrimSpace(c.PostForm("nome_equipamento"))
	tipo := strings.TrimSpace(c.PostForm("tipo"))
	patrimonio := strings.TrimSpace(c.PostForm("patrimonio"))

	u, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if nome == "" || patrimonio == "" {
		addFlash(c, "danger", "Preencha o nome do equipamento e o patrimônio.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if h.store.CreateAssignment(nome, tipo, patrimonio, u.ID) {
		addFlash(c, "success", "Equipamento vinculado com sucesso!")
	} else {
		addFlash(c, "danger", "Erro: Património já registado em outro sistema.")
	}
	c.Redirect(http.StatusFound, "/")
}
