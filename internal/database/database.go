package database

import (
	"fmt"
	"log"
	"os"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB abre a conexão com o Postgres usando a DATABASE_URL do .env
// e roda as migrações. Falha de conexão na subida é fatal.
func ConnectDB() {
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL não encontrado no .env")
	}

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Falha ao conectar ao banco de dados: %v", err)
	}

	fmt.Println("Conexão com o banco de dados estabelecida com sucesso.")

	if err := Migrate(DB); err != nil {
		log.Fatal("Falha ao executar migrações:", err)
	}
	fmt.Println("Migrações concluídas com sucesso.")
}

// Migrate roda o AutoMigrate de todos os modelos. Exposta em separado para
// os testes, que sobem um banco em memória.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Product{},
		&model.Category{},
		&model.Coupon{},
		&model.Order{},
		&model.OrderItem{},
		&model.Table{},
		&model.StoreConfig{},
		&model.LoyaltyConfig{},
	)
}
