package handlers

import (
	"net/http"
	"strings"

	"github.com/dvpl/assetflow/internal/models"

	"github.com/gin-gonic/gin"
)

// Index mostra o inventário (com filtros tipo/modelo), as estatísticas por
// status e os equipamentos do próprio usuário.
func (h *Handler) Index(c *gin.Context) {
	tipo := strings.TrimSpace(c.Query("tipo"))
	modelo := strings.TrimSpace(c.Query("modelo"))

	ativos, err := h.store.ListAssets(tipo, modelo)
	if err != nil {
		addFlash(c, "danger", "Erro ao carregar o inventário.")
	}

	stats, _ := h.store.SummaryCounts()

	var meusEquipamentos []models.Equipamento
	if u, ok := currentUser(c); ok {
		meusEquipamentos, _ = h.store.ListAssignmentsForUser(u.ID)
	}

	h.render(c, http.StatusOK, "index.html", gin.H{
		"ativos":           ativos,
		"stats":            stats,
		"meusEquipamentos": meusEquipamentos,
		"tipo":             tipo,
		"modelo":           modelo,
	})
}

func (h *Handler) ShowCadastrar(c *gin.Context) {
	h.render(c, http.StatusOK, "cadastrar.html", gin.H{})
}

// Cadastrar registra um novo ativo. Tag e série duplicadas são rejeitadas
// pelo store; aqui só validamos presença.
func (h *Handler) Cadastrar(c *gin.Context) {
	tag := strings.TrimSpace(c.PostForm("tag"))
	tipo := strings.TrimSpace(c.PostForm("tipo"))
	marca := strings.TrimSpace(c.PostForm("marca"))
	modelo := strings.TrimSpace(c.PostForm("modelo"))
	serie := strings.TrimSpace(c.PostForm("serie"))

	if tag == "" || serie == "" {
		addFlash(c, "danger", "Preencha a tag de patrimônio e o número de série.")
		h.render(c, http.StatusBadRequest, "cadastrar.html", gin.H{})
		return
	}

	if !h.store.CreateAsset(tag, tipo, marca, modelo, serie) {
		addFlash(c, "danger", "Erro: Tag de Patrimônio ou Série já cadastrada.")
		h.render(c, http.StatusBadRequest, "cadastrar.html", gin.H{})
		return
	}

	addFlash(c, "success", "Ativo cadastrado com sucesso!")
	c.Redirect(http.StatusFound, "/")
}

// ShowEditar exibe o formulário de edição. Tag inexistente resulta num
// formulário com os campos em branco, não em 404.
func (h *Handler) ShowEditar(c *gin.Context) {
	tag := c.Param("tag")

	ativo, err := h.store.GetAsset(tag)
	if err != nil {
		addFlash(c, "danger", "Erro ao carregar o ativo.")
	}
	if ativo == nil {
		ativo = &models.Ativo{TagPatrimonio: tag, Status: models.StatusDisponivel}
	}

	h.render(c, http.StatusOK, "editar.html", gin.H{"ativo": ativo})
}

func (h *Handler) Editar(c *gin.Context) {
	tag := c.Param("tag")
	tipo := strings.TrimSpace(c.PostForm("tipo"))
	marca := strings.TrimSpace(c.PostForm("marca"))
	modelo := strings.TrimSpace(c.PostForm("modelo"))
	serie := strings.TrimSpace(c.PostForm("serie"))
	status := models.AtivoStatus(c.PostForm("status"))

	if status != models.StatusDisponivel && status != models.StatusEmUso {
		status = models.StatusDisponivel
	}

	if !h.store.UpdateAsset(tag, tipo, marca, modelo, serie, status) {
		addFlash(c, "danger", "Erro ao atualizar o ativo.")
		c.Redirect(http.StatusFound, "/editar/"+tag)
		return
	}

	addFlash(c, "success", "Ativo atualizado com sucesso!")
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) ExcluirAtivo(c *gin.Context) {
	tag := c.Param("tag")

	if h.store.DeleteAsset(tag) {
		addFlash(c, "success", "Ativo "+tag+" removido com sucesso!")
	} else {
		addFlash(c, "danger", "Erro ao tentar remover o ativo.")
	}
	c.Redirect(http.StatusFound, "/")
}

// AtualizarResponsavel vincula o responsável ao ativo; o status vai para
// Em Uso como efeito colateral no store.
func (h *Handler) AtualizarResponsavel(c *gin.Context) {
	tag := strings.TrimSpace(c.PostForm("tag"))
	responsavel := strings.TrimSpace(c.PostForm("responsavel"))

	if tag == "" || responsavel == "" {
		addFlash(c, "danger", "Informe a tag e o responsável.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if h.store.AssignHolder(tag, responsavel) {
		addFlash(c, "success", "Responsável do ativo "+tag+" atualizado com sucesso!")
	} else {
		addFlash(c, "danger", "Erro ao atualizar responsável.")
	}
	c.Redirect(http.StatusFound, "/")
}

// LiberarAtivo desfaz a atribuição: remove o responsável e devolve o ativo
// para Disponível.
func (h *Handler) LiberarAtivo(c *gin.Context) {
	tag := c.Param("tag")

	if h.store.ReleaseAsset(tag) {
		addFlash(c, "success", "Ativo "+tag+" liberado e disponível novamente.")
	} else {
		addFlash(c, "danger", "Erro ao liberar o ativo.")
	}
	c.Redirect(http.StatusFound, "/")
}
