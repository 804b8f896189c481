package handler

import (
	"net/http"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/gin-gonic/gin"
)

// StoreConfigRequest usa ponteiros para distinguir "não enviado" de "false".
type StoreConfigRequest struct {
	TablesEnabled      *bool `json:"tablesEnabled"`
	DeliveryEnabled    *bool `json:"deliveryEnabled"`
	CounterEnabled     *bool `json:"counterEnabled"`
	StatusPanelEnabled *bool `json:"statusPanelEnabled"`
}

func GetStoreConfig(c *gin.Context) {
	var cfg model.StoreConfig
	if err := database.DB.First(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar a configuração."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg, "isOpen": cfg.IsOpen()})
}

// UpdateStoreConfig aplica as chaves enviadas sobre o registro único.
func UpdateStoreConfig(c *gin.Context) {
	var req StoreConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cfg model.StoreConfig
	if err := database.DB.First(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar a configuração."})
		return
	}

	if req.TablesEnabled != nil {
		cfg.TablesEnabled = *req.TablesEnabled
	}
	if req.DeliveryEnabled != nil {
		cfg.DeliveryEnabled = *req.DeliveryEnabled
	}
	if req.CounterEnabled != nil {
		cfg.CounterEnabled = *req.CounterEnabled
	}
	if req.StatusPanelEnabled != nil {
		cfg.StatusPanelEnabled = *req.StatusPanelEnabled
	}

	if err := database.DB.Save(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar a configuração."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg, "isOpen": cfg.IsOpen()})
}

func GetLoyaltyConfig(c *gin.Context) {
	var cfg model.LoyaltyConfig
	if err := database.DB.First(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar o programa de fidelidade."})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

type LoyaltyConfigRequest struct {
	Enabled        *bool    `json:"enabled"`
	PointsPerReal  *int     `json:"pointsPerReal"`
	RewardPoints   *int     `json:"rewardPoints"`
	RewardDiscount *float64 `json:"rewardDiscount"`
}

func UpdateLoyaltyConfig(c *gin.Context) {
	var req LoyaltyConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cfg model.LoyaltyConfig
	if err := database.DB.First(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar o programa de fidelidade."})
		return
	}

	if req.Enabled != nil {
		cfg.Enabled = *req.Enabled
	}
	if req.PointsPerReal != nil {
		cfg.PointsPerReal = *req.PointsPerReal
	}
	if req.RewardPoints != nil {
		cfg.RewardPoints = *req.RewardPoints
	}
	if req.RewardDiscount != nil {
		cfg.RewardDiscount = *req.RewardDiscount
	}

	if err := database.DB.Save(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar o programa de fidelidade."})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
