// Package tables cuida dos "slots" numéricos que acomodam pedidos em
// andamento: mesas físicas, faixa de entrega e faixa de balcão.
package tables

import "github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"

// Faixas de numeração dos slots. As mesas físicas (1-12) não participam da
// alocação automática; entrega e balcão usam faixas virtuais disjuntas.
const (
	PhysicalFirst = 1
	PhysicalLast  = 12

	DeliveryFirst = 900
	DeliveryLast  = 949

	CounterFirst = 950
	CounterLast  = 999
)

// Sentinelas usadas pelo front como tableId provisório antes da alocação.
// Precisam ser resolvidas para um id concreto antes de persistir o pedido.
const (
	DeliveryPlaceholder = -DeliveryFirst
	CounterPlaceholder  = -CounterFirst
)

// Range devolve os limites da faixa para o tipo de atendimento.
func Range(orderType string) (first, last int) {
	if orderType == model.OrderTypeCounter {
		return CounterFirst, CounterLast
	}
	return DeliveryFirst, DeliveryLast
}

// Allocate escolhe o slot para um novo pedido: o menor id livre da faixa do
// tipo de atendimento. Ids ausentes de known contam como livres. Com a faixa
// inteira ocupada devolve o início da faixa — o que reutiliza o slot e
// sobrescreve o ocupante; limitação conhecida, herdada do comportamento
// original, e não um erro.
func Allocate(orderType string, known []model.Table) int {
	first, last := Range(orderType)

	byID := make(map[int]model.Table, len(known))
	for _, t := range known {
		byID[t.ID] = t
	}

	for id := first; id <= last; id++ {
		t, exists := byID[id]
		if !exists || t.IsFree() {
			return id
		}
	}
	return first
}

// Resolve troca uma sentinela negativa pelo slot concreto. Ids concretos só
// passam direto quando pertencem à faixa do tipo de atendimento; qualquer
// outro valor vindo do cliente dispara a alocação normal — um pedido de
// entrega nunca pode parar numa mesa física.
func Resolve(tableID int, orderType string, known []model.Table) int {
	if tableID == DeliveryPlaceholder || tableID == CounterPlaceholder || tableID == 0 {
		return Allocate(orderType, known)
	}
	if !InRange(tableID, orderType) {
		return Allocate(orderType, known)
	}
	return tableID
}

// InRange diz se o id pertence à faixa do tipo de atendimento.
func InRange(tableID int, orderType string) bool {
	first, last := Range(orderType)
	return tableID >= first && tableID <= last
}
