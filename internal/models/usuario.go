package models

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTecnico UserRole = "tecnico"
)

// Usuario é uma conta de acesso ao sistema (admin ou técnico).
type Usuario struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string   `gorm:"column:password;not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
}

func (Usuario) TableName() string { return "usuarios" }
