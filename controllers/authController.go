package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Wekesa/sokoni-api/initializers"
	"github.com/Wekesa/sokoni-api/models"
	"github.com/Wekesa/sokoni-api/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "user with this email already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid email or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// currentActor reads the identity the auth middleware stored on the
// context.
func currentActor(ctx *gin.Context) (services.Actor, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return services.Actor{}, false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return services.Actor{}, false
	}
	userId, ok := claims["user_id"].(float64)
	if !ok {
		return services.Actor{}, false
	}
	role, _ := claims["role"].(string)
	return services.Actor{UserID: uint(userId), Role: role}, true
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func checkUserExists(email string) (bool, error) {
	var existingUser models.User
	result := initializers.DB.Where("email = ?", email).Find(&existingUser)
	return result.RowsAffected > 0, result.Error
}

// Signup handles user registration
func Signup(ctx *gin.Context) {
	var signUpData models.User
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	exists, err := checkUserExists(signUpData.Email)
	if err != nil {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}
	signUpData.Password = hashedPassword

	// Assign default role if not specified
	if signUpData.Role == "" {
		signUpData.Role = "customer"
	}

	if result := initializers.DB.Create(&signUpData); result.Error != nil {
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "User created successfully.",
		"id":      signUpData.ID,
	})
}

// Login handles user authentication
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	if result := initializers.DB.Where("email = ?", loginData.Email).First(&user); result.Error != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString})
}
