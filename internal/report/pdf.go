package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dvpl/assetflow/internal/models"

	"github.com/go-pdf/fpdf"
)

const holderPlaceholder = "—"

// Inventory gera o relatório tabular do inventário em PDF: título, quem
// gerou, quais filtros foram aplicados e uma linha por ativo. A quebra de
// página fica por conta do fpdf.
func Inventory(ativos []models.Ativo, username, tipoFilter, modeloFilter string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("AssetFlow - Relatório de Inventário de TI"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Gerado por: %s", username)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr("Filtros: "+filterLine(tipoFilter, modeloFilter)), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFillColor(200, 220, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 10, tr("Patrimônio"), "1", 0, "", true, 0, "")
	pdf.CellFormat(35, 10, "Tipo", "1", 0, "", true, 0, "")
	pdf.CellFormat(50, 10, "Modelo", "1", 0, "", true, 0, "")
	pdf.CellFormat(30, 10, "Status", "1", 0, "", true, 0, "")
	pdf.CellFormat(45, 10, tr("Responsável"), "1", 1, "", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, ativo := range ativos {
		responsavel := holderPlaceholder
		if ativo.ResponsavelAtual != nil && *ativo.ResponsavelAtual != "" {
			responsavel = *ativo.ResponsavelAtual
		}

		pdf.CellFormat(30, 10, tr(ativo.TagPatrimonio), "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 10, tr(ativo.Tipo), "1", 0, "", false, 0, "")
		pdf.CellFormat(50, 10, tr(ativo.Modelo), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 10, tr(string(ativo.Status)), "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 10, tr(responsavel), "1", 1, "", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func filterLine(tipo, modelo string) string {
	var parts []string
	if tipo != "" {
		parts = append(parts, "tipo="+tipo)
	}
	if modelo != "" {
		parts = append(parts, "modelo="+modelo)
	}
	if len(parts) == 0 {
		return "Todos"
	}
	return strings.Join(parts, ", ")
}
