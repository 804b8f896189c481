package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product representa um item do cardápio vendido na loja.
// O ID é um identificador curto em texto, compartilhado com o front-end
// (os cupons com escopo "product" referenciam esses ids).
type Product struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Name        string          `gorm:"not null;size:100" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"index;not null" json:"category"`
	Image       string          `json:"image"`
	// Sem default no banco: com a tag de default o gorm omite o valor zero
	// no insert e um produto criado indisponível viraria disponível.
	IsAvailable bool            `gorm:"not null" json:"isAvailable"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// Category agrupa produtos no cardápio e serve de chave de escopo
// para os cupons de desconto.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;size:100" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
