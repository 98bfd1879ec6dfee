package middleware

import (
	"errors"
	"net/http"

	"github.com/MatiasFerreyra/Journal_Api/internal/repository"
	"github.com/gin-gonic/gin"
)

// GetCurrentUser devuelve el usuario autenticado de la petición.
func GetCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"email": c.GetString("email")}})
}

// DeleteUser elimina la cuenta del usuario autenticado junto con todos sus
// datos: planes diarios, operaciones y planes mensuales.
func DeleteUser(c *gin.Context) {
	email := c.GetString("email")

	if err := userRepo.DeleteUser(email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado"})
}
