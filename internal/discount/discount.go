// Package discount calcula o desconto de cupons sobre um carrinho.
// O cálculo é por item: cada item recebe o melhor cupom (maior percentual)
// dentre os ativos cujo escopo o alcança; os descontos nunca se somam.
package discount

import (
	"errors"
	"strings"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/shopspring/decimal"
)

// ErrCouponInvalid indica código inexistente ou cupom inativo.
var ErrCouponInvalid = errors.New("cupom inválido")

var cem = decimal.NewFromInt(100)

// Item é o que o avaliador precisa saber de uma linha do carrinho.
type Item struct {
	ProductID string
	Category  string
	Price     decimal.Decimal
	Quantity  int
}

// Evaluate devolve o desconto total do carrinho. Para cada item escolhe o
// cupom ativo de maior percentual cujo escopo o alcança; empate exato de
// percentual mantém o primeiro encontrado na ordem do slice.
func Evaluate(items []Item, coupons []model.Coupon) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		best, ok := bestFor(it, coupons)
		if !ok {
			continue
		}
		subtotal := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(subtotal.Mul(decimal.NewFromFloat(best.Percentage)).Div(cem))
	}
	return total
}

func bestFor(it Item, coupons []model.Coupon) (model.Coupon, bool) {
	var best model.Coupon
	found := false
	for _, c := range coupons {
		if !c.IsActive || !Matches(c, it) {
			continue
		}
		if !found || c.Percentage > best.Percentage {
			best = c
			found = true
		}
	}
	return best, found
}

// Matches diz se o escopo do cupom alcança o item. Categorias comparam sem
// diferenciar maiúsculas e com espaços aparados; ids de produto só aparam
// espaços.
func Matches(c model.Coupon, it Item) bool {
	switch c.ScopeType {
	case model.ScopeCategory:
		want := strings.ToLower(strings.TrimSpace(it.Category))
		for _, v := range strings.Split(c.ScopeValue, ",") {
			if strings.ToLower(strings.TrimSpace(v)) == want {
				return true
			}
		}
		return false
	case model.ScopeProduct:
		want := strings.TrimSpace(it.ProductID)
		for _, v := range strings.Split(c.ScopeValue, ",") {
			if strings.TrimSpace(v) == want {
				return true
			}
		}
		return false
	default:
		// "all" (e qualquer escopo desconhecido tratado como all, como no
		// front original).
		return true
	}
}

// FindByCode resolve um código digitado no checkout: comparação exata sem
// diferenciar maiúsculas, somente entre cupons ativos.
func FindByCode(code string, coupons []model.Coupon) (model.Coupon, error) {
	want := strings.ToLower(strings.TrimSpace(code))
	if want == "" {
		return model.Coupon{}, ErrCouponInvalid
	}
	for _, c := range coupons {
		if c.IsActive && strings.ToLower(strings.TrimSpace(c.Code)) == want {
			return c, nil
		}
	}
	return model.Coupon{}, ErrCouponInvalid
}
