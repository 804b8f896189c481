// Package checkout monta e persiste pedidos a partir do carrinho.
package checkout

import (
	"errors"
	"strings"
	"time"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/discount"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/tables"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Erros de validação, detectados antes de qualquer escrita no banco.
var (
	ErrStoreClosed     = errors.New("a loja está fechada no momento")
	ErrEmptyCart       = errors.New("carrinho vazio")
	ErrNameRequired    = errors.New("informe o nome do cliente")
	ErrAddressRequired = errors.New("informe o endereço de entrega")
	ErrOrderType       = errors.New("tipo de atendimento inválido")
	ErrOrderTypeOff    = errors.New("tipo de atendimento indisponível no momento")
	ErrPaymentMethod   = errors.New("método de pagamento inválido")
	ErrUnavailable     = errors.New("um ou mais itens do carrinho não estão mais disponíveis")
)

// Input é o que o cliente envia no checkout. TableID aceita as sentinelas
// negativas do front (-900/-950) ou zero; a alocação resolve o slot real.
type Input struct {
	CustomerName  string
	CustomerPhone string
	OrderType     string
	Address       string
	PaymentMethod string
	CouponCode    string
	TableID       int
}

// Service monta pedidos: valida, calcula desconto, aloca slot e grava tudo
// numa transação. O carrinho em si pertence ao chamador (sessão) e só deve
// ser limpo depois que PlaceOrder retornar sem erro.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// PlaceOrder valida a entrada e o carrinho, congela os itens, aplica o cupom
// informado (se houver) e grava pedido + itens + ocupação do slot numa única
// transação. Qualquer falha deixa o banco e o carrinho como estavam.
//
// Dois checkouts simultâneos podem enxergar o mesmo slot livre e colidir;
// não há controle otimista aqui, o último grava por cima (limitação
// conhecida).
func (s *Service) PlaceOrder(in Input, cart map[string]int) (*model.Order, error) {
	var cfg model.StoreConfig
	if err := s.db.First(&cfg).Error; err != nil {
		return nil, err
	}
	if !cfg.IsOpen() {
		return nil, ErrStoreClosed
	}

	in.OrderType = normalizeOrderType(in.OrderType)
	if err := validate(in, cfg, cart); err != nil {
		return nil, err
	}

	items, total, err := s.snapshotCart(cart)
	if err != nil {
		return nil, err
	}

	desconto := decimal.Zero
	if strings.TrimSpace(in.CouponCode) != "" {
		var ativos []model.Coupon
		if err := s.db.Where("is_active = ?", true).Find(&ativos).Error; err != nil {
			return nil, err
		}
		cupom, err := discount.FindByCode(in.CouponCode, ativos)
		if err != nil {
			return nil, err
		}
		desconto = discount.Evaluate(toDiscountItems(items), []model.Coupon{cupom}).Round(2)
	}

	order := &model.Order{
		ID:            newOrderID(),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Items:         items,
		Total:         total,
		Discount:      desconto,
		FinalTotal:    total.Sub(desconto),
		PaymentMethod: in.PaymentMethod,
		Timestamp:     time.Now(),
		OrderType:     in.OrderType,
		Address:       strings.TrimSpace(in.Address),
		Status:        model.StatusPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		first, last := tables.Range(in.OrderType)
		var known []model.Table
		if err := tx.Where("id BETWEEN ? AND ?", first, last).Order("id").Find(&known).Error; err != nil {
			return err
		}
		order.TableID = tables.Resolve(in.TableID, in.OrderType, known)

		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tables.NewRepository(tx).Occupy(order.TableID, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func validate(in Input, cfg model.StoreConfig, cart map[string]int) error {
	if len(cart) == 0 {
		return ErrEmptyCart
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return ErrNameRequired
	}
	switch in.OrderType {
	case model.OrderTypeDelivery:
		if !cfg.DeliveryEnabled {
			return ErrOrderTypeOff
		}
		if strings.TrimSpace(in.Address) == "" {
			return ErrAddressRequired
		}
	case model.OrderTypeCounter:
		if !cfg.CounterEnabled {
			return ErrOrderTypeOff
		}
	default:
		return ErrOrderType
	}
	switch in.PaymentMethod {
	case model.PaymentDinheiro, model.PaymentPix, model.PaymentCartao:
	default:
		return ErrPaymentMethod
	}
	return nil
}

// snapshotCart congela os itens do carrinho com os dados atuais do banco.
// Itens removidos ou indisponíveis invalidam o checkout inteiro, como na
// tela do carrinho.
func (s *Service) snapshotCart(cart map[string]int) ([]model.OrderItem, decimal.Decimal, error) {
	ids := make([]string, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}

	var produtos []model.Product
	if err := s.db.Where("id IN ? AND is_available = ?", ids, true).Find(&produtos).Error; err != nil {
		return nil, decimal.Zero, err
	}
	if len(produtos) != len(cart) {
		return nil, decimal.Zero, ErrUnavailable
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(produtos))
	for _, p := range produtos {
		qty := cart[p.ID]
		if qty <= 0 {
			continue
		}
		item := model.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Category:  p.Category,
			Quantity:  qty,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}
	if len(items) == 0 {
		return nil, decimal.Zero, ErrEmptyCart
	}
	return items, total, nil
}

func toDiscountItems(items []model.OrderItem) []discount.Item {
	out := make([]discount.Item, len(items))
	for i, it := range items {
		out[i] = discount.Item{
			ProductID: it.ProductID,
			Category:  it.Category,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return out
}

// normalizeOrderType aceita "takeaway" como sinônimo de balcão, como o front
// antigo enviava.
func normalizeOrderType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "takeaway" {
		return model.OrderTypeCounter
	}
	return t
}

// newOrderID gera o código curto do pedido (8 caracteres alfanuméricos).
func newOrderID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:8])
}
