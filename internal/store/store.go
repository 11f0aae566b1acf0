package store

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store é a fachada de acesso a dados: um método por operação de negócio.
// Mutações retornam um flag de sucesso e registram a causa da falha no log;
// violação de unicidade nunca vira pânico nem erro para o chamador.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// fallback para drivers sqlite que não traduzem o erro
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed")
}
