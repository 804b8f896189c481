package handler

import (
	"net/http"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/gin-gonic/gin"
)

// ShowMenu devolve a vitrine inteira numa única resposta: configuração da
// loja, categorias, produtos disponíveis e cupons ativos. O front consome
// esse retrato imutável em vez de remendar estados parciais.
func ShowMenu(c *gin.Context) {
	var cfg model.StoreConfig
	if err := database.DB.First(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar a configuração da loja."})
		return
	}

	var categorias []model.Category
	if err := database.DB.Order("name").Find(&categorias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar as categorias."})
		return
	}

	var produtos []model.Product
	if err := database.DB.Where("is_available = ?", true).Order("category, name").Find(&produtos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar o cardápio."})
		return
	}

	var cupons []model.Coupon
	if err := database.DB.Where("is_active = ?", true).Find(&cupons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar os cupons."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"config":     cfg,
		"categories": categorias,
		"products":   produtos,
		"coupons":    cupons,
		"isOpen":     cfg.IsOpen(),
	})
}

// ShowConfig devolve só a configuração de disponibilidade, reavaliada a cada
// chamada (o gate de loja fechada nunca é cacheado).
func ShowConfig(c *gin.Context) {
	var cfg model.StoreConfig
	if err := database.DB.First(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar a configuração da loja."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg, "isOpen": cfg.IsOpen()})
}
