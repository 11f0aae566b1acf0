package models

// Equipamento vincula um equipamento específico ao técnico responsável.
// A remoção do usuário remove os vínculos dele (ON DELETE CASCADE).
type Equipamento struct {
	ID              uint    `gorm:"primaryKey"`
	NomeEquipamento string  `gorm:"size:255;not null;column:nome_equipamento"`
	Tipo            string  `gorm:"size:100"`
	Patrimonio      string  `gorm:"uniqueIndex;size:50;not null"`
	ResponsavelID   uint    `gorm:"not null;column:responsavel_id"`
	Responsavel     Usuario `gorm:"foreignKey:ResponsavelID;constraint:OnDelete:CASCADE"`
}

func (Equipamento) TableName() string { return "equipamentos" }
