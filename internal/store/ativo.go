package store

import (
	"errors"
	"strings"

	"github.com/dvpl/assetflow/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateAsset cadastra um novo ativo, sempre como Disponível e sem responsável.
// Retorna false se a tag ou o número de série já existirem.
func (s *Store) CreateAsset(tag, tipo, marca, modelo, serie string) bool {
	ativo := models.Ativo{
		TagPatrimonio: tag,
		Tipo:          tipo,
		Marca:         marca,
		Modelo:        modelo,
		NumSerie:      serie,
		Status:        models.StatusDisponivel,
	}

	if err := s.db.Create(&ativo).Error; err != nil {
		if isUniqueViolation(err) {
			s.log.Warn("tag ou número de série já cadastrado",
				zap.String("tag", tag), zap.String("num_serie", serie))
		} else {
			s.log.Error("falha ao cadastrar ativo", zap.String("tag", tag), zap.Error(err))
		}
		return false
	}
	return true
}

// UpdateAsset atualiza os campos descritivos e o status do ativo da tag dada.
// Retorna false se a tag não existir ou o novo número de série colidir.
func (s *Store) UpdateAsset(tag, tipo, marca, modelo, serie string, status models.AtivoStatus) bool {
	res := s.db.Model(&models.Ativo{}).
		Where("tag_patrimonio = ?", tag).
		Updates(map[string]interface{}{
			"tipo":      tipo,
			"marca":     marca,
			"modelo":    modelo,
			"num_serie": serie,
			"status":    status,
		})
	if res.Error != nil {
		s.log.Error("falha ao atualizar ativo", zap.String("tag", tag), zap.Error(res.Error))
		return false
	}
	if res.RowsAffected == 0 {
		s.log.Warn("ativo inexistente", zap.String("tag", tag))
		return false
	}
	return true
}

// DeleteAsset remove o ativo permanentemente. Retorna false quando a tag
// não existe, para que a remoção de um ativo ausente não pareça sucesso.
func (s *Store) DeleteAsset(tag string) bool {
	res := s.db.Where("tag_patrimonio = ?", tag).Delete(&models.Ativo{})
	if res.Error != nil {
		s.log.Error("falha ao excluir ativo", zap.String("tag", tag), zap.Error(res.Error))
		return false
	}
	if res.RowsAffected == 0 {
		s.log.Warn("ativo inexistente", zap.String("tag", tag))
		return false
	}
	return true
}

// AssignHolder define o responsável pelo ativo. Ao atribuir, o status passa
// automaticamente para Em Uso.
func (s *Store) AssignHolder(tag, responsavel string) bool {
	res := s.db.Model(&models.Ativo{}).
		Where("tag_patrimonio = ?", tag).
		Updates(map[string]interface{}{
			"responsavel_atual": responsavel,
			"status":            models.StatusEmUso,
		})
	if res.Error != nil {
		s.log.Error("falha ao atualizar responsável", zap.String("tag", tag), zap.Error(res.Error))
		return false
	}
	if res.RowsAffected == 0 {
		s.log.Warn("ativo inexistente", zap.String("tag", tag))
		return false
	}
	return true
}

// ReleaseAsset é a operação simétrica de AssignHolder: limpa o responsável
// e devolve o ativo para Disponível.
func (s *Store) ReleaseAsset(tag string) bool {
	res := s.db.Model(&models.Ativo{}).
		Where("tag_patrimonio = ?", tag).
		Updates(map[string]interface{}{
			"responsavel_atual": nil,
			"status":            models.StatusDisponivel,
		})
	if res.Error != nil {
		s.log.Error("falha ao liberar ativo", zap.String("tag", tag), zap.Error(res.Error))
		return false
	}
	if res.RowsAffected == 0 {
		s.log.Warn("ativo inexistente", zap.String("tag", tag))
		return false
	}
	return true
}

// ListAssets lista o inventário ordenado por tag decrescente. Os filtros são
// substring case-insensitive; filtro vazio casa com tudo.
func (s *Store) ListAssets(tipo, modelo string) ([]models.Ativo, error) {
	q := s.db.Model(&models.Ativo{})
	if tipo != "" {
		q = q.Where("LOWER(tipo) LIKE ?", "%"+strings.ToLower(tipo)+"%")
	}
	if modelo != "" {
		q = q.Where("LOWER(modelo) LIKE ?", "%"+strings.ToLower(modelo)+"%")
	}

	var ativos []models.Ativo
	if err := q.Order("tag_patrimonio DESC").Find(&ativos).Error; err != nil {
		s.log.Error("falha ao listar ativos", zap.Error(err))
		return nil, err
	}
	return ativos, nil
}

// GetAsset busca um ativo pela tag; retorna nil quando não existe.
func (s *Store) GetAsset(tag string) (*models.Ativo, error) {
	var ativo models.Ativo
	err := s.db.First(&ativo, "tag_patrimonio = ?", tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Error("falha ao buscar ativo", zap.String("tag", tag), zap.Error(err))
		return nil, err
	}
	return &ativo, nil
}

// SummaryCounts retorna a contagem de ativos por status.
func (s *Store) SummaryCounts() (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}

	var rows []row
	if err := s.db.Model(&models.Ativo{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		s.log.Error("falha ao calcular estatísticas", zap.Error(err))
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}
