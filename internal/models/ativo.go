package models

type AtivoStatus string

const (
	StatusDisponivel AtivoStatus = "Disponível"
	StatusEmUso      AtivoStatus = "Em Uso"
)

// Ativo é um item físico de TI identificado pela tag de patrimônio.
// ResponsavelAtual guarda apenas o nome de exibição, não é chave estrangeira.
type Ativo struct {
	TagPatrimonio    string      `gorm:"primaryKey;size:50;column:tag_patrimonio"`
	Tipo             string      `gorm:"size:100;not null"`
	Marca            string      `gorm:"size:100"`
	Modelo           string      `gorm:"size:100"`
	NumSerie         string      `gorm:"uniqueIndex;size:100;not null;column:num_serie"`
	Status           AtivoStatus `gorm:"type:varchar(20);not null"`
	ResponsavelAtual *string     `gorm:"size:255;column:responsavel_atual"`
}

func (Ativo) TableName() string { return "ativos" }
