package store

import (
	"errors"

	"github.com/dvpl/assetflow/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// FindUser busca um usuário pelo username; retorna nil quando não existe.
func (s *Store) FindUser(username string) (*models.Usuario, error) {
	var user models.Usuario
	err := s.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Error("falha ao buscar usuário", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindUserByID rehidrata o usuário da sessão.
func (s *Store) FindUserByID(id uint) (*models.Usuario, error) {
	var user models.Usuario
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Error("falha ao buscar usuário", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// CreateUser cria um usuário guardando apenas o hash bcrypt da senha.
// Role vazio vira técnico. Retorna false se o username já existir.
func (s *Store) CreateUser(username, password string, role models.UserRole) bool {
	if role == "" {
		role = models.RoleTecnico
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("falha ao gerar hash de senha", zap.String("username", username), zap.Error(err))
		return false
	}

	user := models.Usuario{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			s.log.Warn("username já existe", zap.String("username", username))
		} else {
			s.log.Error("falha ao criar usuário", zap.String("username", username), zap.Error(err))
		}
		return false
	}
	return true
}

// ListUsers lista os colaboradores em ordem alfabética de username.
func (s *Store) ListUsers() ([]models.Usuario, error) {
	var users []models.Usuario
	if err := s.db.Select("id", "username").
		Order("username ASC").
		Find(&users).Error; err != nil {
		s.log.Error("falha ao listar usuários", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// DeleteUser remove o usuário. Os vínculos de equipamento dele caem junto
// via ON DELETE CASCADE. Retorna false quando o id não existe.
func (s *Store) DeleteUser(id uint) bool {
	res := s.db.Delete(&models.Usuario{}, id)
	if res.Error != nil {
		s.log.Error("falha ao excluir usuário", zap.Uint("id", id), zap.Error(res.Error))
		return false
	}
	if res.RowsAffected == 0 {
		s.log.Warn("usuário inexistente", zap.Uint("id", id))
		return false
	}
	return true
}
