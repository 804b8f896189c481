package model

import "time"

// StoreConfig é o registro único de disponibilidade da loja.
type StoreConfig struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	TablesEnabled      bool      `gorm:"not null;default:false" json:"tablesEnabled"`
	DeliveryEnabled    bool      `gorm:"not null;default:true" json:"deliveryEnabled"`
	CounterEnabled     bool      `gorm:"not null;default:true" json:"counterEnabled"`
	StatusPanelEnabled bool      `gorm:"not null;default:true" json:"statusPanelEnabled"`
	UpdatedAt          time.Time `json:"-"`
}

// IsOpen diz se a loja aceita pedidos. Com entrega e balcão desligados a
// vitrine continua visível, mas nenhum pedido pode ser feito; mesas físicas
// não entram nessa conta.
func (c StoreConfig) IsOpen() bool {
	return c.DeliveryEnabled || c.CounterEnabled
}

// LoyaltyConfig é o registro único do programa de fidelidade (opcional).
type LoyaltyConfig struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	Enabled        bool      `gorm:"not null;default:false" json:"enabled"`
	PointsPerReal  int       `gorm:"not null;default:1" json:"pointsPerReal"`
	RewardPoints   int       `gorm:"not null;default:100" json:"rewardPoints"`
	RewardDiscount float64   `gorm:"not null;default:10" json:"rewardDiscount"`
	UpdatedAt      time.Time `json:"-"`
}
