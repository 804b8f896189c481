package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// isDuplicateError reconhece violação de índice único nos drivers usados
// (postgres fala "duplicate key", sqlite fala "UNIQUE constraint failed").
func isDuplicateError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

func ListCategories(c *gin.Context) {
	var categorias []model.Category
	if err := database.DB.Order("name").Find(&categorias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar categorias."})
		return
	}
	c.JSON(http.StatusOK, categorias)
}

func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categoria := model.Category{Name: strings.TrimSpace(req.Name)}
	if err := database.DB.Create(&categoria).Error; err != nil {
		if isDuplicateError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Já existe uma categoria com esse nome."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar a categoria."})
		return
	}
	c.JSON(http.StatusCreated, categoria)
}

// UpdateCategory renomeia a categoria. Os produtos referenciam a categoria
// pelo nome, então eles acompanham a mudança na mesma transação.
func UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido."})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	novoNome := strings.TrimSpace(req.Name)

	var categoria model.Category
	if err := database.DB.First(&categoria, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada."})
		return
	}

	antigoNome := categoria.Name
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		categoria.Name = novoNome
		if err := tx.Save(&categoria).Error; err != nil {
			return err
		}
		return tx.Model(&model.Product{}).Where("category = ?", antigoNome).
			Update("category", novoNome).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar a categoria."})
		return
	}
	c.JSON(http.StatusOK, categoria)
}

func DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido."})
		return
	}

	result := database.DB.Delete(&model.Category{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir a categoria."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
