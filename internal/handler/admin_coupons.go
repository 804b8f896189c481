package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/gin-gonic/gin"
)

// CouponRequest é o corpo de criação/edição de cupom.
type CouponRequest struct {
	Code       string  `json:"code" binding:"required"`
	Percentage float64 `json:"percentage" binding:"required"`
	IsActive   *bool   `json:"isActive"`
	ScopeType  string  `json:"scopeType"`
	ScopeValue string  `json:"scopeValue"`
}

func (r *CouponRequest) validate() string {
	if r.Percentage < 0 || r.Percentage > 100 {
		return "O percentual deve estar entre 0 e 100."
	}
	switch r.ScopeType {
	case "", model.ScopeAll, model.ScopeCategory, model.ScopeProduct:
	default:
		return "Escopo inválido (use all, category ou product)."
	}
	if (r.ScopeType == model.ScopeCategory || r.ScopeType == model.ScopeProduct) &&
		strings.TrimSpace(r.ScopeValue) == "" {
		return "Informe os valores do escopo do cupom."
	}
	return ""
}

func ListCoupons(c *gin.Context) {
	var cupons []model.Coupon
	if err := database.DB.Order("code").Find(&cupons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar cupons."})
		return
	}
	c.JSON(http.StatusOK, cupons)
}

func CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	scopeType := req.ScopeType
	if scopeType == "" {
		scopeType = model.ScopeAll
	}
	ativo := true
	if req.IsActive != nil {
		ativo = *req.IsActive
	}

	cupom := model.Coupon{
		Code:       strings.ToUpper(strings.TrimSpace(req.Code)),
		Percentage: req.Percentage,
		IsActive:   ativo,
		ScopeType:  scopeType,
		ScopeValue: req.ScopeValue,
	}

	if err := database.DB.Create(&cupom).Error; err != nil {
		if isDuplicateError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Já existe um cupom com esse código."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar o cupom."})
		return
	}
	c.JSON(http.StatusCreated, cupom)
}

func UpdateCoupon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido."})
		return
	}

	var cupom model.Coupon
	if err := database.DB.First(&cupom, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cupom não encontrado."})
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	cupom.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	cupom.Percentage = req.Percentage
	if req.IsActive != nil {
		cupom.IsActive = *req.IsActive
	}
	if req.ScopeType != "" {
		cupom.ScopeType = req.ScopeType
	}
	cupom.ScopeValue = req.ScopeValue

	if err := database.DB.Save(&cupom).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar o cupom."})
		return
	}
	c.JSON(http.StatusOK, cupom)
}

// ToggleCoupon ativa/desativa o cupom sem mexer no resto.
func ToggleCoupon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido."})
		return
	}

	var cupom model.Coupon
	if err := database.DB.First(&cupom, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cupom não encontrado."})
		return
	}

	cupom.IsActive = !cupom.IsActive
	if err := database.DB.Save(&cupom).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar o cupom."})
		return
	}
	c.JSON(http.StatusOK, cupom)
}

func DeleteCoupon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido."})
		return
	}

	result := database.DB.Delete(&model.Coupon{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir o cupom."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cupom não encontrado."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
