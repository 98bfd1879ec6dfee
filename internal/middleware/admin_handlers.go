package middleware

import (
	"errors"
	"net/http"

	"github.com/MatiasFerreyra/Journal_Api/internal/repository"
	"github.com/gin-gonic/gin"
)

// GetUsers lista los emails registrados.
func GetUsers(c *gin.Context) {
	emails, err := userRepo.ListEmails()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": emails, "count": len(emails)})
}

// DeleteUserByAdmin elimina la cuenta indicada y todos sus datos.
func DeleteUserByAdmin(c *gin.Context) {
	email := c.Param("email")

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
