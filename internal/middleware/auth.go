package middleware

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MatiasFerreyra/Journal_Api/internal/database"
	"github.com/MatiasFerreyra/Journal_Api/internal/repository"
	"github.com/MatiasFerreyra/Journal_Api/internal/services"
	"github.com/MatiasFerreyra/Journal_Api/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	appStore    *storage.Store
	userRepo    *repository.UserRepository
	planRepo    *repository.PlanRepository
	journalRepo *repository.JournalRepository
	monthlyRepo *repository.MonthlyRepository
)

// InitRepos inicializa el almacén y los repositorios sobre la base de datos
// global. Debe llamarse después de database.InitDB.
func InitRepos() {
	appStore = storage.NewStore(database.DB)
	userRepo = repository.NewUserRepository(appStore)
	planRepo = repository.NewPlanRepository(appStore)
	journalRepo = repository.NewJournalRepository(appStore)
	monthlyRepo = repository.NewMonthlyRepository(appStore)
}

// RestoreSession recupera la sesión persistida al arrancar el servidor.
// Es una acción única de arranque: si el registro está corrupto se limpia.
func RestoreSession() {
	user, err := userRepo.RestoreSession()
	if err != nil {
		log.Printf("Error al restaurar la sesión: %v", err)
		return
	}
	if user != nil {
		log.Printf("Sesión restaurada para %s", user.Email)
	}
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		email, _ := claims["email"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}
		c.Set("email", email)
		c.Next()
	}
}

func GenerateToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func GenerateResetToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"reset": true,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// Signup registra la credencial y abre sesión para el nuevo usuario.
func Signup(c *gin.Context) {
	var signup struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&signup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := userRepo.Register(signup.Email, signup.Password); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear usuario"})
		return
	}

	token, err := GenerateToken(signup.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registro exitoso",
		"token":   token,
		"user":    gin.H{"email": signup.Email},
	})
}

// Login verifica la credencial y abre sesión.
func Login(c *gin.Context) {
	var login struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := userRepo.Authenticate(login.Email, login.Password); err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al iniciar sesión"})
		return
	}

	if err := userRepo.SetSession(login.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar la sesión"})
		return
	}

	token, err := GenerateToken(login.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inicio de sesión exitoso",
		"token":   token,
		"user":    gin.H{"email": login.Email},
	})
}

// Logout limpia la sesión persistida. Es idempotente: cerrar sesión dos
// veces no es un error.
func Logout(c *gin.Context) {
	if err := userRepo.ClearSession(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cerrar sesión"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

// RequestResetPassword genera un token de restablecimiento y lo envía por
// correo al usuario.
func RequestResetPassword(c *gin.Context) {
	var request struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emails, err := userRepo.ListEmails()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar usuario"})
		return
	}

	registered := false
	for _, email := range emails {
		if email == request.Email {
			registered = true
			break
		}
	}
	if !registered {
		c.JSON(http.StatusNotFound, gin.H{"error": repository.ErrUserNotFound.Error()})
		return
	}

	token, err := GenerateResetToken(request.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar token"})
		return
	}

	if err := services.SendPasswordResetEmail(request.Email, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al enviar email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email de recuperación enviado"})
}

// ResetPassword valida el token de restablecimiento y actualiza la contraseña.
func ResetPassword(c *gin.Context) {
	var request struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := jwt.Parse(request.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		return
	}

	claims := token.Claims.(jwt.MapClaims)
	email, _ := claims["email"].(string)
	if email == "" || claims["reset"] != true {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		return
	}

	if err := userRepo.UpdatePassword(email, request.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar contraseña"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}
