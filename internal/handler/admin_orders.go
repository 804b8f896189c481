package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/statuspanel"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/tables"
	"github.com/gin-gonic/gin"
)

// AdminOrdersHandler agrupa a gestão de pedidos e mesas do painel.
type AdminOrdersHandler struct {
	Tables *tables.Repository
	Panel  *statuspanel.Publisher
}

type UpdateOrderStatusRequest struct {
	Status model.StatusOrder `json:"status" binding:"required"`
}

// ListOrders lista os pedidos mais recentes primeiro, com filtro opcional
// de status (?status=pending).
func (h *AdminOrdersHandler) ListOrders(c *gin.Context) {
	query := database.DB.Preload("Items").Order("timestamp DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", model.StatusOrder(status))
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		log.Printf("Erro ao buscar pedidos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedidos."})
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus avança o status de um pedido. Marcar como entregue
// libera o slot ocupado e desassocia o pedido dele.
func (h *AdminOrdersHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Status {
	case model.StatusPending, model.StatusPreparing, model.StatusReady, model.StatusDelivered:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status inválido."})
		return
	}

	var order model.Order
	if err := database.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado."})
		return
	}

	if err := database.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		log.Printf("Erro ao atualizar pedido %s: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar o pedido."})
		return
	}
	order.Status = req.Status

	if req.Status == model.StatusDelivered {
		if err := h.Tables.Free(order.TableID); err != nil && !errors.Is(err, tables.ErrTableNotFound) {
			log.Printf("Aviso: falha ao liberar a mesa %d do pedido %s: %v", order.TableID, order.ID, err)
		}
	}

	if err := h.Panel.Publish(c.Request.Context(), statuspanel.StatusEvent{
		OrderID: order.ID, Status: order.Status, TableID: order.TableID,
	}); err != nil {
		log.Printf("Aviso: falha ao publicar status do pedido %s: %v", order.ID, err)
	}

	c.JSON(http.StatusOK, order)
}

// ListTables mostra todos os slots e seus pedidos atuais.
func (h *AdminOrdersHandler) ListTables(c *gin.Context) {
	mesas, err := h.Tables.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar mesas."})
		return
	}
	c.JSON(http.StatusOK, mesas)
}

// FreeTable libera um slot manualmente.
func (h *AdminOrdersHandler) FreeTable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido."})
		return
	}

	if err := h.Tables.Free(id); err != nil {
		if errors.Is(err, tables.ErrTableNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mesa não encontrada."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao liberar a mesa."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
