package discount

import (
	"testing"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, category string, price float64, qty int) Item {
	return Item{ProductID: id, Category: category, Price: decimal.NewFromFloat(price), Quantity: qty}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		items    []Item
		coupons  []model.Coupon
		expected string
	}{
		{
			name:     "sem cupons o desconto é zero",
			items:    []Item{item("p1", "Doces", 10.00, 2)},
			coupons:  nil,
			expected: "0",
		},
		{
			name:  "cupom de categoria aplica sobre o item",
			items: []Item{item("p1", "Fit", 25.00, 2)},
			coupons: []model.Coupon{
				{Code: "FIT10", Percentage: 10, IsActive: true, ScopeType: model.ScopeCategory, ScopeValue: "Fit"},
			},
			expected: "5",
		},
		{
			name:  "dois cupons all no mesmo item: vale o maior, nunca a soma",
			items: []Item{item("p1", "Doces", 10.00, 1)},
			coupons: []model.Coupon{
				{Code: "A5", Percentage: 5, IsActive: true, ScopeType: model.ScopeAll},
				{Code: "A15", Percentage: 15, IsActive: true, ScopeType: model.ScopeAll},
			},
			expected: "1.5",
		},
		{
			name:  "escopos diferentes 10 e 20: seleciona 20",
			items: []Item{item("p1", "Salgados", 30.00, 1)},
			coupons: []model.Coupon{
				{Code: "CAT10", Percentage: 10, IsActive: true, ScopeType: model.ScopeCategory, ScopeValue: "Salgados"},
				{Code: "PROD20", Percentage: 20, IsActive: true, ScopeType: model.ScopeProduct, ScopeValue: "p1"},
			},
			expected: "6",
		},
		{
			name:  "cupom inativo não participa",
			items: []Item{item("p1", "Doces", 10.00, 1)},
			coupons: []model.Coupon{
				{Code: "OFF50", Percentage: 50, IsActive: false, ScopeType: model.ScopeAll},
			},
			expected: "0",
		},
		{
			name:  "item fora do escopo contribui com zero",
			items: []Item{item("p1", "Bebidas", 8.00, 3)},
			coupons: []model.Coupon{
				{Code: "FIT10", Percentage: 10, IsActive: true, ScopeType: model.ScopeCategory, ScopeValue: "Fit"},
			},
			expected: "0",
		},
		{
			name: "cada item pode receber um cupom diferente",
			items: []Item{
				item("p1", "Fit", 20.00, 1),
				item("p2", "Doces", 10.00, 1),
			},
			coupons: []model.Coupon{
				{Code: "FIT10", Percentage: 10, IsActive: true, ScopeType: model.ScopeCategory, ScopeValue: "Fit"},
				{Code: "DOCE20", Percentage: 20, IsActive: true, ScopeType: model.ScopeCategory, ScopeValue: "Doces"},
			},
			expected: "4", // 2.00 do Fit + 2.00 do Doces
		},
		{
			name:  "categoria compara sem maiúsculas e com espaços aparados",
			items: []Item{item("p1", "  fit  ", 10.00, 1)},
			coupons: []model.Coupon{
				{Code: "FIT10", Percentage: 10, IsActive: true, ScopeType: model.ScopeCategory, ScopeValue: "Doces, FIT ,Bolos"},
			},
			expected: "1",
		},
		{
			name:  "escopo por produto usa lista de ids",
			items: []Item{item("p2", "Doces", 12.00, 2)},
			coupons: []model.Coupon{
				{Code: "P25", Percentage: 25, IsActive: true, ScopeType: model.ScopeProduct, ScopeValue: "p1, p2"},
			},
			expected: "6",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.items, tc.coupons)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)),
				"esperado %s, obtido %s", tc.expected, got)
		})
	}
}

// Empate exato de percentual mantém o primeiro cupom na ordem do slice.
func TestEvaluateTieKeepsFirst(t *testing.T) {
	items := []Item{item("p1", "Doces", 10.00, 1)}
	coupons := []model.Coupon{
		{ID: 1, Code: "PRIMEIRO", Percentage: 10, IsActive: true, ScopeType: model.ScopeAll},
		{ID: 2, Code: "SEGUNDO", Percentage: 10, IsActive: true, ScopeType: model.ScopeAll},
	}

	best, ok := bestFor(items[0], coupons)
	require.True(t, ok)
	assert.Equal(t, "PRIMEIRO", best.Code)
}

// Para qualquer carrinho, 0 <= desconto <= total.
func TestEvaluateBounds(t *testing.T) {
	carts := [][]Item{
		{},
		{item("p1", "Fit", 25.00, 2)},
		{item("p1", "Fit", 0.00, 5)},
		{item("p1", "Fit", 99.99, 3), item("p2", "Doces", 0.50, 100)},
	}
	coupons := []model.Coupon{
		{Code: "TUDO100", Percentage: 100, IsActive: true, ScopeType: model.ScopeAll},
		{Code: "FIT10", Percentage: 10, IsActive: true, ScopeType: model.ScopeCategory, ScopeValue: "Fit"},
	}

	for _, cart := range carts {
		total := decimal.Zero
		for _, it := range cart {
			total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		got := Evaluate(cart, coupons)
		assert.False(t, got.IsNegative(), "desconto negativo: %s", got)
		assert.True(t, got.LessThanOrEqual(total), "desconto %s maior que o total %s", got, total)
	}
}

func TestFindByCode(t *testing.T) {
	coupons := []model.Coupon{
		{Code: "FIT10", Percentage: 10, IsActive: true},
		{Code: "INATIVO", Percentage: 30, IsActive: false},
	}

	t.Run("comparação ignora maiúsculas e espaços", func(t *testing.T) {
		c, err := FindByCode("  fit10 ", coupons)
		require.NoError(t, err)
		assert.Equal(t, "FIT10", c.Code)
	})

	t.Run("código inexistente é inválido", func(t *testing.T) {
		_, err := FindByCode("NAOEXISTE", coupons)
		assert.ErrorIs(t, err, ErrCouponInvalid)
	})

	t.Run("cupom inativo é inválido", func(t *testing.T) {
		_, err := FindByCode("INATIVO", coupons)
		assert.ErrorIs(t, err, ErrCouponInvalid)
	})

	t.Run("código vazio é inválido", func(t *testing.T) {
		_, err := FindByCode("   ", coupons)
		assert.ErrorIs(t, err, ErrCouponInvalid)
	})
}
