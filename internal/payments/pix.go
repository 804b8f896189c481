// Package payments gera a cobrança Pix de um pedido. Com MP_ACCESS_TOKEN
// configurado a cobrança é criada no Mercado Pago; sem ele, o QR devolvido
// aponta para o recibo do pedido e a cobrança fica por conta do caixa.
package payments

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/skip2/go-qrcode"
)

// ErrPixRejected indica que o provedor recusou a cobrança.
var ErrPixRejected = errors.New("cobrança pix recusada pelo provedor")

// PixCharge é o resultado devolvido ao front para exibir o QR.
type PixCharge struct {
	PaymentID    int64  `json:"paymentId,omitempty"`
	QRCode       string `json:"qrCode"`
	QRCodeBase64 string `json:"qrCodeBase64"`
}

type PixService struct {
	cfg     *config.Config
	baseURL string
}

// NewPixService lê MP_ACCESS_TOKEN do ambiente. Token ausente não é erro:
// o serviço opera em modo local (QR do recibo).
func NewPixService() *PixService {
	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	token := os.Getenv("MP_ACCESS_TOKEN")
	if token == "" {
		log.Println("MP_ACCESS_TOKEN não configurado; Pix em modo local.")
		return &PixService{baseURL: baseURL}
	}

	cfg, err := config.New(token)
	if err != nil {
		log.Printf("Erro ao criar config do Mercado Pago: %v. Pix em modo local.", err)
		return &PixService{baseURL: baseURL}
	}
	return &PixService{cfg: cfg, baseURL: baseURL}
}

// Charge cria a cobrança Pix do pedido.
func (s *PixService) Charge(ctx context.Context, o *model.Order) (*PixCharge, error) {
	if s.cfg == nil {
		return s.localCharge(o)
	}

	client := payment.NewClient(s.cfg)
	request := payment.Request{
		TransactionAmount: o.FinalTotal.InexactFloat64(),
		Description:       fmt.Sprintf("Pedido %s - Delícias Caseiras", o.ID),
		PaymentMethodID:   "pix",
		ExternalReference: o.ID,
		Payer: &payment.PayerRequest{
			FirstName: o.CustomerName,
			Email:     fmt.Sprintf("pedido-%s@delicias-caseiras.com.br", o.ID),
		},
	}

	resource, err := client.Create(ctx, request)
	if err != nil {
		return nil, err
	}
	if resource.Status != "pending" && resource.Status != "approved" {
		return nil, ErrPixRejected
	}

	return &PixCharge{
		PaymentID:    int64(resource.ID),
		QRCode:       resource.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: resource.PointOfInteraction.TransactionData.QRCodeBase64,
	}, nil
}

// localCharge gera um QR apontando para o recibo do pedido.
func (s *PixService) localCharge(o *model.Order) (*PixCharge, error) {
	url := fmt.Sprintf("%s/api/pedidos/%s/recibo", s.baseURL, o.ID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}
	return &PixCharge{
		QRCode:       url,
		QRCodeBase64: base64.StdEncoding.EncodeToString(png),
	}, nil
}
