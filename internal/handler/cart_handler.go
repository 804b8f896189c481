package handler

import (
	"encoding/gob"
	"net/http"
	"sort"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/shopspring/decimal"
)

const (
	SessionName    = "delicias-session"
	CartSessionKey = "shopping_cart"
)

func init() {
	// O carrinho vive no cookie de sessão; o tipo precisa estar registrado
	// para a serialização.
	gob.Register(map[string]int{})
}

// CartItemView é a linha do carrinho devolvida ao front, já validada contra
// o banco.
type CartItemView struct {
	Product  model.Product   `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartHandler agrupa os handlers do carrinho.
type CartHandler struct {
	Store *sessions.CookieStore
}

// AddToCart adiciona um item ao carrinho; adicionar um id já presente
// incrementa a quantidade em vez de duplicar a linha.
func (h *CartHandler) AddToCart(c *gin.Context) {
	productID := c.Param("id")

	var produto model.Product
	if err := database.DB.Where("id = ? AND is_available = ?", productID, true).First(&produto).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Produto não encontrado ou indisponível."})
		return
	}

	session, _ := h.Store.Get(c.Request, SessionName)
	cart := getCart(session)
	cart[productID]++

	session.Values[CartSessionKey] = cart
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar o carrinho."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Item adicionado com sucesso!",
		"newCartCount": totalQuantity(cart),
	})
}

// DecreaseQuantity diminui a quantidade de um item; em quantidade 1 o item
// sai do carrinho.
func (h *CartHandler) DecreaseQuantity(c *gin.Context) {
	productID := c.Param("id")

	session, _ := h.Store.Get(c.Request, SessionName)
	cart := getCart(session)
	if len(cart) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Carrinho já vazio.", "newCartCount": 0})
		return
	}

	if quantity, exists := cart[productID]; exists {
		if quantity > 1 {
			cart[productID]--
		} else {
			delete(cart, productID)
		}
		session.Values[CartSessionKey] = cart
		if err := session.Save(c.Request, c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao atualizar o carrinho."})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quantidade atualizada.", "newCartCount": totalQuantity(cart)})
}

// RemoveFromCart remove a linha inteira do item.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID := c.Param("id")

	session, _ := h.Store.Get(c.Request, SessionName)
	cart := getCart(session)
	if len(cart) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Carrinho já vazio.", "newCartCount": 0})
		return
	}

	delete(cart, productID)
	session.Values[CartSessionKey] = cart
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao atualizar o carrinho."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removido.", "newCartCount": totalQuantity(cart)})
}

// ClearCart esvazia o carrinho.
func (h *CartHandler) ClearCart(c *gin.Context) {
	session, _ := h.Store.Get(c.Request, SessionName)
	session.Values[CartSessionKey] = make(map[string]int)
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao limpar o carrinho."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Carrinho esvaziado.", "newCartCount": 0})
}

// ShowCart devolve o conteúdo validado do carrinho. Itens que sumiram do
// cardápio ou ficaram indisponíveis são descartados da visão (e da sessão).
func (h *CartHandler) ShowCart(c *gin.Context) {
	session, _ := h.Store.Get(c.Request, SessionName)
	cart := getCart(session)

	if len(cart) == 0 {
		c.JSON(http.StatusOK, gin.H{"items": []CartItemView{}, "total": decimal.Zero, "count": 0})
		return
	}

	ids := make([]string, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}

	var produtos []model.Product
	if err := database.DB.Where("id IN ? AND is_available = ?", ids, true).Find(&produtos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar detalhes dos produtos."})
		return
	}

	total := decimal.Zero
	items := make([]CartItemView, 0, len(produtos))
	finalCart := make(map[string]int)
	for _, p := range produtos {
		quantity := cart[p.ID]
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(quantity)))
		items = append(items, CartItemView{Product: p, Quantity: quantity, Subtotal: subtotal})
		total = total.Add(subtotal)
		finalCart[p.ID] = quantity
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Product.Name < items[j].Product.Name
	})

	if len(finalCart) != len(cart) {
		session.Values[CartSessionKey] = finalCart
		_ = session.Save(c.Request, c.Writer)
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": total, "count": totalQuantity(finalCart)})
}

// --- Funções auxiliares ---

func getCart(session *sessions.Session) map[string]int {
	cart, ok := session.Values[CartSessionKey].(map[string]int)
	if !ok {
		return make(map[string]int)
	}
	return cart
}

func totalQuantity(cart map[string]int) int {
	total := 0
	for _, quantity := range cart {
		total += quantity
	}
	return total
}
