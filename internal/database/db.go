package database

import (
	"fmt"

	"github.com/dvpl/assetflow/internal/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultAdminUser     = "admin"
	defaultAdminPassword = "admin123"
)

// Open abre (ou cria) o arquivo do banco, garante o schema e o admin padrão.
// As três tabelas são criadas de forma idempotente via AutoMigrate.
func Open(path string, log *zap.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.Ativo{},
		&models.Equipamento{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seedDefaultAdmin(db, log)

	return db, nil
}

// seedDefaultAdmin cria a conta admin/admin123 uma única vez.
func seedDefaultAdmin(db *gorm.DB, log *zap.Logger) {
	var count int64
	if err := db.Model(&models.Usuario{}).
		Where("username = ?", defaultAdminUser).
		Count(&count).Error; err != nil {
		log.Warn("falha ao verificar conta admin", zap.Error(err))
		return
	}
	if count > 0 {
		// admin já existe, nada a fazer
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Warn("falha ao gerar hash da senha do admin", zap.Error(err))
		return
	}

	admin := models.Usuario{
		Username:     defaultAdminUser,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Warn("falha ao criar conta admin", zap.Error(err))
		return
	}

	log.Info("conta admin criada", zap.String("username", defaultAdminUser))
}
