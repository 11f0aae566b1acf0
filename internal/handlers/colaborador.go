package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dvpl/assetflow/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListColaboradores(c *gin.Context) {
	usuarios, err := h.store.ListUsers()
	if err != nil {
		addFlash(c, "danger", "Erro ao carregar a lista de colaboradores.")
	}

	h.render(c, http.StatusOK, "colaboradores.html", gin.H{"usuarios": usuarios})
}

func (h *Handler) ShowNovoColaborador(c *gin.Context) {
	h.render(c, http.StatusOK, "novo_colaborador.html", gin.H{})
}

// NovoColaborador cria uma conta de acesso (rota restrita a admin).
func (h *Handler) NovoColaborador(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	role := models.UserRole(c.PostForm("role"))

	if username == "" || password == "" {
		addFlash(c, "danger", "Preencha usuário e senha.")
		h.render(c, http.StatusBadRequest, "novo_colaborador.html", gin.H{})
		return
	}

	// pela interface só nascem contas admin ou técnico
	if role != models.RoleAdmin && role != models.RoleTecnico {
		role = models.RoleTecnico
	}

	if !h.store.CreateUser(username, password, role) {
		addFlash(c, "danger", "Erro: Este nome de usuário já existe.")
		h.render(c, http.StatusBadRequest, "novo_colaborador.html", gin.H{})
		return
	}

	addFlash(c, "success", "Usuário "+username+" criado com sucesso!")
	c.Redirect(http.StatusFound, "/colaboradores")
}

// ExcluirColaborador remove uma conta (rota restrita a admin). A comparação
// com a própria sessão é feita por id, antes de qualquer acesso ao banco.
func (h *Handler) ExcluirColaborador(c *gin.Context) {
	idRaw, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		addFlash(c, "danger", "Identificador de usuário inválido.")
		c.Redirect(http.StatusFound, "/colaboradores")
		return
	}
	id := uint(idRaw)

	if u, ok := currentUser(c); ok && u.ID == id {
		addFlash(c, "warning", "Erro: Não podes eliminar a tua própria conta de administrador!")
		c.Redirect(http.StatusFound, "/colaboradores")
		return
	}

	if h.store.DeleteUser(id) {
		addFlash(c, "success", "Utilizador removido com sucesso!")
	} else {
		addFlash(c, "danger", "Erro ao tentar remover utilizador.")
	}
	c.Redirect(http.StatusFound, "/colaboradores")
}
