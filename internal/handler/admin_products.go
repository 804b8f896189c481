package handler

import (
	"net/http"
	"strings"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRequest é o corpo de criação/edição de produto no painel.
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Image       string          `json:"image"`
	IsAvailable *bool           `json:"isAvailable"`
}

// ListProducts lista o cardápio inteiro, inclusive indisponíveis.
func ListProducts(c *gin.Context) {
	var produtos []model.Product
	if err := database.DB.Order("category, name").Find(&produtos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar produtos."})
		return
	}
	c.JSON(http.StatusOK, produtos)
}

// CreateProduct cria um produto; sem id informado um novo é gerado.
func CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O preço não pode ser negativo."})
		return
	}

	disponivel := true
	if req.IsAvailable != nil {
		disponivel = *req.IsAvailable
	}

	produto := model.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    strings.TrimSpace(req.Category),
		Image:       req.Image,
		IsAvailable: disponivel,
	}

	if err := database.DB.Create(&produto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar o produto."})
		return
	}
	c.JSON(http.StatusCreated, produto)
}

// UpdateProduct edita um produto existente.
func UpdateProduct(c *gin.Context) {
	var produto model.Product
	if err := database.DB.First(&produto, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado."})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O preço não pode ser negativo."})
		return
	}

	produto.Name = strings.TrimSpace(req.Name)
	produto.Description = req.Description
	produto.Price = req.Price
	produto.Category = strings.TrimSpace(req.Category)
	produto.Image = req.Image
	if req.IsAvailable != nil {
		produto.IsAvailable = *req.IsAvailable
	}

	if err := database.DB.Save(&produto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar o produto."})
		return
	}
	c.JSON(http.StatusOK, produto)
}

// ToggleProductAvailability inverte a disponibilidade do produto na vitrine.
func ToggleProductAvailability(c *gin.Context) {
	var produto model.Product
	if err := database.DB.First(&produto, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado."})
		return
	}

	produto.IsAvailable = !produto.IsAvailable
	if err := database.DB.Save(&produto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar o produto."})
		return
	}
	c.JSON(http.StatusOK, produto)
}

// DeleteProduct remove um produto (soft delete).
func DeleteProduct(c *gin.Context) {
	result := database.DB.Delete(&model.Product{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir o produto."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
