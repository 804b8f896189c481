package handler

import (
	"errors"
	"net/http"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/receipt"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOrder devolve um pedido pelo código curto, para o cliente acompanhar o
// status.
func GetOrder(c *gin.Context) {
	var order model.Order
	err := database.DB.Preload("Items").First(&order, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar o pedido."})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetReceipt devolve o cupom não-fiscal em texto puro, pronto para o diálogo
// de impressão.
func GetReceipt(c *gin.Context) {
	var order model.Order
	err := database.DB.Preload("Items").First(&order, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Pedido não encontrado.")
			return
		}
		c.String(http.StatusInternalServerError, "Erro ao buscar o pedido.")
		return
	}
	c.String(http.StatusOK, receipt.Render(&order))
}

// ShowStatusPanel lista os pedidos em andamento para o painel público.
// Com o painel desligado na configuração responde 404.
func ShowStatusPanel(c *gin.Context) {
	var cfg model.StoreConfig
	if err := database.DB.First(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar a configuração da loja."})
		return
	}
	if !cfg.StatusPanelEnabled {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painel de pedidos desativado."})
		return
	}

	type panelEntry struct {
		ID      string            `json:"id"`
		Status  model.StatusOrder `json:"status"`
		TableID int               `json:"tableId"`
	}

	var orders []model.Order
	err := database.DB.
		Where("status IN ?", []model.StatusOrder{model.StatusPending, model.StatusPreparing, model.StatusReady}).
		Order("timestamp").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedidos."})
		return
	}

	entries := make([]panelEntry, len(orders))
	for i, o := range orders {
		entries[i] = panelEntry{ID: o.ID, Status: o.Status, TableID: o.TableID}
	}
	c.JSON(http.StatusOK, gin.H{"orders": entries})
}
