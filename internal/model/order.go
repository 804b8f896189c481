package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusOrder define os possíveis status de um pedido.
type StatusOrder string

const (
	StatusPending   StatusOrder = "pending"
	StatusPreparing StatusOrder = "preparing"
	StatusReady     StatusOrder = "ready"
	StatusDelivered StatusOrder = "delivered"
)

// Tipos de atendimento de um pedido.
const (
	OrderTypeDelivery = "delivery"
	OrderTypeCounter  = "counter"
)

// Métodos de pagamento aceitos no checkout.
const (
	PaymentDinheiro = "Dinheiro"
	PaymentPix      = "Pix"
	PaymentCartao   = "Cartão"
)

// Order representa um pedido fechado no checkout. O ID é um código curto
// alfanumérico gerado no momento da montagem do pedido.
//
// Invariante: FinalTotal = Total - Discount, com Discount >= 0 e
// Discount <= Total.
type Order struct {
	ID            string          `gorm:"primaryKey;size:12" json:"id"`
	CustomerName  string          `gorm:"not null;size:100" json:"customerName"`
	CustomerPhone string          `gorm:"size:20" json:"customerPhone"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Discount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount"`
	FinalTotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"finalTotal"`
	PaymentMethod string          `gorm:"not null;size:20" json:"paymentMethod"`
	Timestamp     time.Time       `gorm:"not null" json:"timestamp"`
	TableID       int             `gorm:"not null" json:"tableId"`
	OrderType     string          `gorm:"not null;size:10" json:"orderType"`
	// Address só é preenchido quando OrderType = delivery.
	Address   string      `gorm:"size:255" json:"address,omitempty"`
	Status    StatusOrder `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time   `json:"-"`
	UpdatedAt time.Time   `json:"-"`
}

// OrderItem é a cópia imutável de um item do carrinho no momento da compra.
// Preço e categoria são congelados aqui: mudanças posteriores no produto
// não afetam pedidos já feitos.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderID   string          `gorm:"not null;index;size:12" json:"-"`
	ProductID string          `gorm:"not null;size:36" json:"productId"`
	Name      string          `gorm:"not null;size:100" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category  string          `json:"category"`
	Quantity  int             `gorm:"not null" json:"quantity"`
}

// Subtotal retorna price x quantity do item.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
