package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/checkout"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/payments"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/statuspanel"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/tables"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var sessionKey = []byte("chave-de-sessao-apenas-para-testes")

// setupTestDB aponta o banco global para um sqlite em memória migrado e
// semeado, restaurando o anterior no fim do teste.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedConfigOn(db))

	previous := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = previous })
	return db
}

// newRouter monta as mesmas rotas do servidor real, sem CORS.
func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := sessions.NewCookieStore(sessionKey)
	panel := statuspanel.NewPublisher("")
	cart := &CartHandler{Store: store}
	checkoutHandler := &CheckoutHandler{
		Store:   store,
		Service: checkout.NewService(db),
		Pix:     payments.NewPixService(),
		Panel:   panel,
	}
	adminOrders := &AdminOrdersHandler{Tables: tables.NewRepository(db), Panel: panel}

	router := gin.New()

	api := router.Group("/api")
	{
		api.GET("/menu", ShowMenu)
		api.GET("/config", ShowConfig)

		api.GET("/carrinho", cart.ShowCart)
		api.POST("/carrinho/adicionar/:id", cart.AddToCart)
		api.POST("/carrinho/diminuir/:id", cart.DecreaseQuantity)
		api.DELETE("/carrinho/remover/:id", cart.RemoveFromCart)
		api.DELETE("/carrinho", cart.ClearCart)

		api.POST("/cupom/validar", checkoutHandler.ValidateCoupon)
		api.POST("/checkout", checkoutHandler.ProcessCheckout)

		api.GET("/pedidos/:id", GetOrder)
		api.GET("/pedidos/:id/recibo", GetReceipt)
		api.GET("/painel", ShowStatusPanel)
	}

	router.POST("/admin/login", Login)
	admin := router.Group("/admin", AuthRequired())
	{
		admin.GET("/sessao", Sessao)

		admin.GET("/produtos", ListProducts)
		admin.POST("/produtos", CreateProduct)
		admin.PUT("/produtos/:id", UpdateProduct)
		admin.PATCH("/produtos/:id/disponibilidade", ToggleProductAvailability)
		admin.DELETE("/produtos/:id", DeleteProduct)

		admin.GET("/categorias", ListCategories)
		admin.POST("/categorias", CreateCategory)
		admin.PUT("/categorias/:id", UpdateCategory)
		admin.DELETE("/categorias/:id", DeleteCategory)

		admin.GET("/cupons", ListCoupons)
		admin.POST("/cupons", CreateCoupon)
		admin.PUT("/cupons/:id", UpdateCoupon)
		admin.PATCH("/cupons/:id/ativo", ToggleCoupon)
		admin.DELETE("/cupons/:id", DeleteCoupon)

		admin.GET("/pedidos", adminOrders.ListOrders)
		admin.PUT("/pedidos/:id/status", adminOrders.UpdateOrderStatus)
		admin.GET("/mesas", adminOrders.ListTables)
		admin.POST("/mesas/:id/liberar", adminOrders.FreeTable)

		admin.GET("/config", GetStoreConfig)
		admin.PUT("/config", UpdateStoreConfig)
		admin.GET("/fidelidade", GetLoyaltyConfig)
		admin.PUT("/fidelidade", UpdateLoyaltyConfig)
	}

	return router
}

// client carrega os cookies entre requisições, como um navegador.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
	headers map[string]string
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router, headers: map[string]string{}}
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	// Cookies novos substituem os de mesmo nome.
	for _, ck := range rec.Result().Cookies() {
		replaced := false
		for i, old := range c.cookies {
			if old.Name == ck.Name {
				c.cookies[i] = ck
				replaced = true
			}
		}
		if !replaced {
			c.cookies = append(c.cookies, ck)
		}
	}
	return rec
}

// cart decodifica o carrinho direto do cookie de sessão do cliente.
func (c *client) cart() map[string]int {
	c.t.Helper()
	codec := securecookie.New(sessionKey, nil)

	for _, ck := range c.cookies {
		if ck.Name != SessionName {
			continue
		}
		values := make(map[interface{}]interface{})
		require.NoError(c.t, codec.Decode(SessionName, ck.Value, &values))
		if cart, ok := values[CartSessionKey].(map[string]int); ok {
			return cart
		}
		return map[string]int{}
	}
	return map[string]int{}
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func seedTestProduct(t *testing.T, db *gorm.DB, id, name, category string, price float64, available bool) {
	t.Helper()
	require.NoError(t, db.Create(&model.Product{
		ID:          id,
		Name:        name,
		Price:       decimal.NewFromFloat(price),
		Category:    category,
		IsAvailable: available,
	}).Error)
}

func seedAdminUser(t *testing.T, db *gorm.DB, email, senha string) model.Usuario {
	t.Helper()
	u := model.Usuario{Nome: "Dona da Loja", Email: email}
	require.NoError(t, u.SetSenha(senha))
	require.NoError(t, db.Create(&u).Error)
	return u
}
