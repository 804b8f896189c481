package database

import (
	"errors"
	"log"
	"os"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"gorm.io/gorm"
)

// SeedAdmin garante que exista ao menos uma conta administrativa.
// Credenciais vêm do .env (ADMIN_EMAIL / ADMIN_SENHA).
func SeedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	senha := os.Getenv("ADMIN_SENHA")
	if email == "" || senha == "" {
		log.Println("ADMIN_EMAIL/ADMIN_SENHA não definidos; seed do admin ignorado.")
		return
	}

	var user model.Usuario
	result := DB.Where("email = ?", email).First(&user)

	if result.Error != nil && errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Println("Usuário admin não encontrado, criando um novo...")

		admin := model.Usuario{Nome: "Administrador", Email: email}
		if err := admin.SetSenha(senha); err != nil {
			log.Fatalf("Falha ao criar hash da senha do admin: %v", err)
		}

		if err := DB.Create(&admin).Error; err != nil {
			log.Fatalf("Falha ao criar o usuário admin: %v", err)
		}
		log.Println("Usuário admin criado com sucesso.")
	} else {
		log.Println("Usuário admin já existe.")
	}
}

// SeedConfig garante a existência dos registros únicos de configuração.
func SeedConfig() {
	if err := SeedConfigOn(DB); err != nil {
		log.Fatalf("Falha ao semear configurações: %v", err)
	}
}

// SeedConfigOn cria store_config e loyalty_config quando ainda não existem.
func SeedConfigOn(db *gorm.DB) error {
	var storeCount int64
	if err := db.Model(&model.StoreConfig{}).Count(&storeCount).Error; err != nil {
		return err
	}
	if storeCount == 0 {
		cfg := model.StoreConfig{
			TablesEnabled:      false,
			DeliveryEnabled:    true,
			CounterEnabled:     true,
			StatusPanelEnabled: true,
		}
		if err := db.Create(&cfg).Error; err != nil {
			return err
		}
	}

	var loyaltyCount int64
	if err := db.Model(&model.LoyaltyConfig{}).Count(&loyaltyCount).Error; err != nil {
		return err
	}
	if loyaltyCount == 0 {
		if err := db.Create(&model.LoyaltyConfig{Enabled: false, PointsPerReal: 1, RewardPoints: 100, RewardDiscount: 10}).Error; err != nil {
			return err
		}
	}
	return nil
}
