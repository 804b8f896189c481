package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/checkout"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/handler"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/payments"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/statuspanel"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/tables"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado; usando variáveis do ambiente.")
	}

	database.ConnectDB()
	database.SeedAdmin()
	database.SeedConfig()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET não encontrada no .env")
	}
	store := sessions.NewCookieStore([]byte(sessionSecret))

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET não encontrada no .env")
	}

	panel := statuspanel.NewPublisher(os.Getenv("REDIS_ADDR"))
	defer panel.Close()

	tablesRepo := tables.NewRepository(database.DB)

	cartHandler := &handler.CartHandler{Store: store}
	checkoutHandler := &handler.CheckoutHandler{
		Store:   store,
		Service: checkout.NewService(database.DB),
		Pix:     payments.NewPixService(),
		Panel:   panel,
	}
	adminOrders := &handler.AdminOrdersHandler{Tables: tablesRepo, Panel: panel}

	router := gin.Default()
	router.Use(cors.New(corsConfig()))

	// --- Vitrine pública ---
	api := router.Group("/api")
	{
		api.GET("/menu", handler.ShowMenu)
		api.GET("/config", handler.ShowConfig)

		api.GET("/carrinho", cartHandler.ShowCart)
		api.POST("/carrinho/adicionar/:id", cartHandler.AddToCart)
		api.POST("/carrinho/diminuir/:id", cartHandler.DecreaseQuantity)
		api.DELETE("/carrinho/remover/:id", cartHandler.RemoveFromCart)
		api.DELETE("/carrinho", cartHandler.ClearCart)

		api.POST("/cupom/validar", checkoutHandler.ValidateCoupon)
		api.POST("/checkout", checkoutHandler.ProcessCheckout)

		api.GET("/pedidos/:id", handler.GetOrder)
		api.GET("/pedidos/:id/recibo", handler.GetReceipt)
		api.GET("/painel", handler.ShowStatusPanel)
	}

	// --- Painel administrativo ---
	router.POST("/admin/login", handler.Login)

	admin := router.Group("/admin", handler.AuthRequired())
	{
		admin.GET("/sessao", handler.Sessao)

		admin.GET("/produtos", handler.ListProducts)
		admin.POST("/produtos", handler.CreateProduct)
		admin.PUT("/produtos/:id", handler.UpdateProduct)
		admin.PATCH("/produtos/:id/disponibilidade", handler.ToggleProductAvailability)
		admin.DELETE("/produtos/:id", handler.DeleteProduct)

		admin.GET("/categorias", handler.ListCategories)
		admin.POST("/categorias", handler.CreateCategory)
		admin.PUT("/categorias/:id", handler.UpdateCategory)
		admin.DELETE("/categorias/:id", handler.DeleteCategory)

		admin.GET("/cupons", handler.ListCoupons)
		admin.POST("/cupons", handler.CreateCoupon)
		admin.PUT("/cupons/:id", handler.UpdateCoupon)
		admin.PATCH("/cupons/:id/ativo", handler.ToggleCoupon)
		admin.DELETE("/cupons/:id", handler.DeleteCoupon)

		admin.GET("/pedidos", adminOrders.ListOrders)
		admin.PUT("/pedidos/:id/status", adminOrders.UpdateOrderStatus)
		admin.GET("/mesas", adminOrders.ListTables)
		admin.POST("/mesas/:id/liberar", adminOrders.FreeTable)

		admin.GET("/config", handler.GetStoreConfig)
		admin.PUT("/config", handler.UpdateStoreConfig)
		admin.GET("/fidelidade", handler.GetLoyaltyConfig)
		admin.PUT("/fidelidade", handler.UpdateLoyaltyConfig)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Servidor rodando na porta %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Falha ao subir o servidor: %v", err)
	}
}

// corsConfig libera tudo em desenvolvimento e restringe ao domínio do front
// em produção.
func corsConfig() cors.Config {
	if os.Getenv("APP_ENV") == "production" {
		return cors.Config{
			AllowOrigins:     []string{os.Getenv("FRONTEND_ORIGIN")},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}
	}
	return cors.Config{
		AllowAllOrigins:  false,
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
