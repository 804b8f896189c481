// Package statuspanel propaga mudanças de status de pedido para o painel
// público via Redis pub/sub. Sem Redis configurado o publicador vira no-op;
// o painel continua funcionando por consulta direta ao banco.
package statuspanel

import (
	"context"
	"encoding/json"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/redis/go-redis/v9"
)

// Channel é o canal Redis onde as mudanças de status são publicadas.
const Channel = "pedidos:status"

// StatusEvent é a mensagem publicada a cada mudança.
type StatusEvent struct {
	OrderID string            `json:"orderId"`
	Status  model.StatusOrder `json:"status"`
	TableID int               `json:"tableId"`
}

type Publisher struct {
	Client *redis.Client
}

// NewPublisher conecta no Redis do endereço dado; endereço vazio devolve um
// publicador inerte.
func NewPublisher(addr string) *Publisher {
	if addr == "" {
		return &Publisher{}
	}
	return &Publisher{Client: redis.NewClient(&redis.Options{Addr: addr})}
}

// Publish envia o evento de status. Nunca é fatal: falha aqui não pode
// derrubar um checkout já gravado.
func (p *Publisher) Publish(ctx context.Context, ev StatusEvent) error {
	if p == nil || p.Client == nil {
		return nil
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.Client.Publish(ctx, Channel, payload).Err()
}

// Close encerra a conexão, se houver.
func (p *Publisher) Close() error {
	if p == nil || p.Client == nil {
		return nil
	}
	return p.Client.Close()
}
