package handler

import (
	"net/http"

	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/auth"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/database"
	"github.com/auricleciorocha30-byte/delicias-caseiras/internal/model"
	"github.com/gin-gonic/gin"
)

// UserClaimsKey é a chave do contexto gin onde o middleware guarda as
// claims do admin autenticado.
const UserClaimsKey = "userClaims"

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// Login autentica o admin e emite o token do painel.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var usuario model.Usuario
	if err := database.DB.Where("email = ?", req.Email).First(&usuario).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mail ou senha inválidos."})
		return
	}

	if err := usuario.CheckSenha(req.Senha); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mail ou senha inválidos."})
		return
	}

	token, err := auth.GenerateToken(usuario.ID, usuario.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar o token."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "nome": usuario.Nome})
}

// Sessao confirma que existe uma sessão privilegiada ativa (o front usa
// para decidir se mostra o painel).
func Sessao(c *gin.Context) {
	claimsData, exists := c.Get(UserClaimsKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"autenticado": false})
		return
	}
	claims := claimsData.(*auth.Claims)
	c.JSON(http.StatusOK, gin.H{"autenticado": true, "email": claims.Email})
}

// AuthRequired protege as rotas do painel: exige um token válido no header
// Authorization.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Header Authorization ausente."})
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido."})
			return
		}

		c.Set(UserClaimsKey, claims)
		c.Next()
	}
}
