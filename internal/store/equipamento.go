package store

import (
	"github.com/dvpl/assetflow/internal/models"

	"go.uber.org/zap"
)

// CreateAssignment vincula um equipamento ao técnico dono da sessão.
// Retorna false se o patrimônio já estiver registrado.
func (s *Store) CreateAssignment(nome, tipo, patrimonio string, responsavelID uint) bool {
	equip := models.Equipamento{
		NomeEquipamento: nome,
		Tipo:            tipo,
		Patrimonio:      patrimonio,
		ResponsavelID:   responsavelID,
	}

	if err := s.db.Create(&equip).Error; err != nil {
		if isUniqueViolation(err) {
			s.log.Warn("patrimônio já registrado", zap.String("patrimonio", patrimonio))
		} else {
			s.log.Error("falha ao vincular equipamento",
				zap.String("patrimonio", patrimonio), zap.Error(err))
		}
		return false
	}
	return true
}

// ListAssignmentsForUser retorna os equipamentos sob responsabilidade do usuário.
func (s *Store) ListAssignmentsForUser(userID uint) ([]models.Equipamento, error) {
	var equipamentos []models.Equipamento
	if err := s.db.Where("responsavel_id = ?", userID).
		Find(&equipamentos).Error; err != nil {
		s.log.Error("falha ao listar equipamentos", zap.Uint("responsavel_id", userID), zap.Error(err))
		return nil, err
	}
	return equipamentos, nil
}
