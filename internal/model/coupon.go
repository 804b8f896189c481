package model

import "time"

// Escopos possíveis de um cupom.
const (
	ScopeAll      = "all"
	ScopeCategory = "category"
	ScopeProduct  = "product"
)

// Coupon é um desconto percentual aplicado por item do carrinho.
// ScopeValue é uma lista separada por vírgulas (nomes de categoria ou
// ids de produto) e só tem significado quando ScopeType != "all".
type Coupon struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Code       string    `gorm:"uniqueIndex;not null;size:50" json:"code"`
	Percentage float64   `gorm:"not null" json:"percentage"`
	// Sem default no banco: com a tag de default o gorm omite o valor zero
	// no insert e um cupom criado desativado viraria ativo.
	IsActive   bool      `gorm:"not null" json:"isActive"`
	ScopeType  string    `gorm:"not null;default:'all';size:20" json:"scopeType"`
	ScopeValue string    `json:"scopeValue"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
