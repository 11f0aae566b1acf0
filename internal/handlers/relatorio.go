package handlers

import (
	"net/http"
	"strings"

	"github.com/dvpl/assetflow/internal/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RelatorioPDF monta o relatório do inventário (com os mesmos filtros da
// listagem) e devolve o binário direto na resposta, sem tocar em disco.
func (h *Handler) RelatorioPDF(c *gin.Context) {
	tipo := strings.TrimSpace(c.Query("tipo"))
	modelo := strings.TrimSpace(c.Query("modelo"))

	ativos, err := h.store.ListAssets(tipo, modelo)
	if err != nil {
		c.String(http.StatusInternalServerError, "erro ao gerar relatório")
		return
	}

	username := ""
	if u, ok := currentUser(c); ok {
		username = u.Username
	}

	pdf, err := report.Inventory(ativos, username, tipo, modelo)
	if err != nil {
		h.log.Error("falha ao gerar relatório PDF", zap.Error(err))
		c.String(http.StatusInternalServerError, "erro ao gerar relatório")
		return
	}

	c.Header("Content-Disposition", `inline; filename="relatorio_ativos.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
