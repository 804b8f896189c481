package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *model.Order {
	return &model.Order{
		ID:            "AB12CD34",
		CustomerName:  "Maria",
		CustomerPhone: "11999990000",
		Items: []model.OrderItem{
			{Name: "Marmita Fit", Price: decimal.RequireFromString("25.00"), Quantity: 2},
			{Name: "Suco de Laranja", Price: decimal.RequireFromString("7.50"), Quantity: 1},
		},
		Total:         decimal.RequireFromString("57.50"),
		Discount:      decimal.RequireFromString("5.00"),
		FinalTotal:    decimal.RequireFromString("52.50"),
		PaymentMethod: model.PaymentPix,
		Timestamp:     time.Date(2025, 3, 14, 18, 30, 0, 0, time.Local),
		TableID:       901,
		OrderType:     model.OrderTypeDelivery,
		Address:       "Rua das Flores, 10",
	}
}

func TestRenderDelivery(t *testing.T) {
	out := Render(sampleOrder())

	assert.Contains(t, out, "DELÍCIAS CASEIRAS")
	assert.Contains(t, out, "Pedido AB12CD34")
	assert.Contains(t, out, "14/03/2025 18:30")
	assert.Contains(t, out, "Cliente: Maria")
	assert.Contains(t, out, "Fone: 11999990000")
	assert.Contains(t, out, "Entrega: Rua das Flores, 10")
	assert.NotContains(t, out, "senha")

	// Item: nome em linha própria, quantidade/unitário à esquerda e o total
	// da linha à direita.
	assert.Contains(t, out, "Marmita Fit\n")
	assert.Contains(t, out, "  2x R$ 25.00")
	assert.Contains(t, out, "R$ 50.00")

	assert.Contains(t, out, "Subtotal")
	assert.Contains(t, out, "-R$ 5.00")
	assert.Contains(t, out, "R$ 52.50")
	assert.Contains(t, out, model.PaymentPix)
}

func TestRenderCounterShowsPickupCode(t *testing.T) {
	o := sampleOrder()
	o.OrderType = model.OrderTypeCounter
	o.TableID = 950
	o.Address = ""

	out := Render(o)
	assert.Contains(t, out, "Balcão - senha 950")
	assert.NotContains(t, out, "Entrega:")
}

func TestRenderWithoutDiscountOmitsLine(t *testing.T) {
	o := sampleOrder()
	o.Discount = decimal.Zero
	o.FinalTotal = o.Total

	out := Render(o)
	assert.NotContains(t, out, "Desconto")
}

func TestRenderWithoutPhoneOmitsLine(t *testing.T) {
	o := sampleOrder()
	o.CustomerPhone = ""

	assert.NotContains(t, Render(o), "Fone:")
}

// Toda linha de rótulo/valor cabe nas 32 colunas da impressora.
func TestRenderWidth(t *testing.T) {
	out := Render(sampleOrder())
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, len([]rune(line)), 32, "linha larga demais: %q", line)
	}
}

// O TOTAL fica alinhado à direita, terminando na última coluna.
func TestRenderRowAlignment(t *testing.T) {
	out := Render(sampleOrder())
	var totalLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "TOTAL") {
			totalLine = line
		}
	}
	require.NotEmpty(t, totalLine)
	assert.Len(t, []rune(totalLine), 32)
	assert.True(t, strings.HasSuffix(totalLine, "R$ 52.50"))
}
