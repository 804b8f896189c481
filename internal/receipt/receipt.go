// Package receipt gera o texto do cupom não-fiscal para impressão, em
// largura fixa de 32 colunas (impressora térmica comum).
package receipt

import (
	"fmt"
	"strings"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/shopspring/decimal"
)

const width = 32

// Render monta o recibo do pedido: cabeçalho, cliente, itens com quantidade
// e preços unitário/linha, forma de pagamento e totais, nessa ordem.
func Render(o *model.Order) string {
	var b strings.Builder

	line := strings.Repeat("-", width)
	b.WriteString(center("DELÍCIAS CASEIRAS") + "\n")
	b.WriteString(center("Pedido "+o.ID) + "\n")
	b.WriteString(o.Timestamp.Format("02/01/2006 15:04") + "\n")
	b.WriteString(line + "\n")

	b.WriteString("Cliente: " + o.CustomerName + "\n")
	if o.CustomerPhone != "" {
		b.WriteString("Fone: " + o.CustomerPhone + "\n")
	}
	if o.OrderType == model.OrderTypeDelivery {
		b.WriteString("Entrega: " + o.Address + "\n")
	} else {
		b.WriteString(fmt.Sprintf("Balcão - senha %d\n", o.TableID))
	}
	b.WriteString(line + "\n")

	for _, it := range o.Items {
		b.WriteString(it.Name + "\n")
		left := fmt.Sprintf("  %dx %s", it.Quantity, money(it.Price))
		b.WriteString(row(left, money(it.Subtotal())) + "\n")
	}
	b.WriteString(line + "\n")

	b.WriteString(row("Subtotal", money(o.Total)) + "\n")
	if o.Discount.IsPositive() {
		b.WriteString(row("Desconto", "-"+money(o.Discount)) + "\n")
	}
	b.WriteString(row("TOTAL", money(o.FinalTotal)) + "\n")
	b.WriteString(row("Pagamento", o.PaymentMethod) + "\n")
	b.WriteString(line + "\n")
	b.WriteString(center("Obrigado pela preferência!") + "\n")

	return b.String()
}

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// row alinha um rótulo à esquerda e um valor à direita na largura do cupom.
func row(left, right string) string {
	pad := width - len([]rune(left)) - len([]rune(right))
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func center(s string) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
