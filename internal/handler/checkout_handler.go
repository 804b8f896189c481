package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/checkout"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/discount"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/payments"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/statuspanel"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// CheckoutRequest espelha o JSON enviado pelo front no fechamento do pedido.
type CheckoutRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone"`
	OrderType     string `json:"orderType" binding:"required"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	CouponCode    string `json:"couponCode"`
	TableID       int    `json:"tableId"`
}

// CheckoutHandler fecha pedidos: monta via checkout.Service, cobra Pix
// quando for o caso e limpa o carrinho da sessão após o sucesso.
type CheckoutHandler struct {
	Store   *sessions.CookieStore
	Service *checkout.Service
	Pix     *payments.PixService
	Panel   *statuspanel.Publisher
}

// ProcessCheckout valida e grava o pedido. Em qualquer falha o carrinho da
// sessão permanece intacto para o cliente tentar de novo.
func (h *CheckoutHandler) ProcessCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados do pedido inválidos.", "details": err.Error()})
		return
	}

	session, _ := h.Store.Get(c.Request, SessionName)
	cart := getCart(session)

	order, err := h.Service.PlaceOrder(checkout.Input{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		OrderType:     req.OrderType,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		CouponCode:    req.CouponCode,
		TableID:       req.TableID,
	}, cart)
	if err != nil {
		status := http.StatusBadRequest
		msg := err.Error()
		if !isValidationError(err) {
			log.Printf("Erro ao registrar pedido: %v", err)
			status = http.StatusInternalServerError
			msg = "Não foi possível registrar seu pedido. Tente novamente."
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	// Pedido gravado: daqui em diante nada mais pode falhar o checkout.
	if err := h.Panel.Publish(c.Request.Context(), statuspanel.StatusEvent{
		OrderID: order.ID, Status: order.Status, TableID: order.TableID,
	}); err != nil {
		log.Printf("Aviso: falha ao publicar status do pedido %s: %v", order.ID, err)
	}

	var pix *payments.PixCharge
	if order.PaymentMethod == model.PaymentPix {
		charge, err := h.Pix.Charge(c.Request.Context(), order)
		if err != nil {
			log.Printf("Aviso: falha ao gerar cobrança Pix do pedido %s: %v", order.ID, err)
		} else {
			pix = charge
		}
	}

	session.Values[CartSessionKey] = make(map[string]int)
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("Aviso: erro ao limpar carrinho após pedido %s: %v", order.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order, "pix": pix})
}

// ValidateCoupon resolve um código digitado no carrinho. Código inexistente
// ou inativo não é erro duro: responde valido=false.
func (h *CheckoutHandler) ValidateCoupon(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe o código do cupom."})
		return
	}

	var ativos []model.Coupon
	if err := database.DB.Where("is_active = ?", true).Find(&ativos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao consultar cupons."})
		return
	}

	cupom, err := discount.FindByCode(req.Code, ativos)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valido": false, "message": "Cupom inválido."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valido": true, "cupom": cupom})
}

func isValidationError(err error) bool {
	for _, v := range []error{
		checkout.ErrStoreClosed,
		checkout.ErrEmptyCart,
		checkout.ErrNameRequired,
		checkout.ErrAddressRequired,
		checkout.ErrOrderType,
		checkout.ErrOrderTypeOff,
		checkout.ErrPaymentMethod,
		checkout.ErrUnavailable,
		discount.ErrCouponInvalid,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
