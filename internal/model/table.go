package model

import "time"

// Status possíveis de uma mesa/slot.
const (
	TableFree     = "free"
	TableOccupied = "occupied"
)

// Table é um "slot" numérico que representa a alocação de um pedido em
// andamento: mesa física (1-12), entrega (900-949) ou balcão (950-999).
//
// Invariante: Status = occupied se e somente se CurrentOrderID != nil.
type Table struct {
	ID             int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Status         string    `gorm:"not null;default:'free';size:10" json:"status"`
	CurrentOrderID *string   `gorm:"size:12" json:"-"`
	CurrentOrder   *Order    `gorm:"foreignKey:CurrentOrderID" json:"currentOrder,omitempty"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// IsFree informa se o slot pode receber um novo pedido. Slots ausentes da
// tabela também contam como livres (ver tables.Allocate).
func (t Table) IsFree() bool {
	return t.Status != TableOccupied
}
