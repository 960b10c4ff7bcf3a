package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/middleware"
	"compensation-request-api/models"
	"compensation-request-api/utils"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a user against the users collection and issues a JWT.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	user, err := findUser(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Cannot load users"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง"})
		return
	}

	claims := middleware.Claims{
		Username: user.Username,
		Name:     user.DisplayName(),
		Role:     user.Role,
		Position: user.AcademicPosition,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Cannot generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   signed,
		"user": gin.H{
			"username": user.Username,
			"name":     user.DisplayName(),
			"role":     user.Role,
			"position": user.AcademicPosition,
		},
	})
}

// GetProfile returns the authenticated user's stored profile.
func GetProfile(c *gin.Context) {
	username := c.GetString("username")

	user, err := findUser(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Cannot load users"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"username":          user.Username,
			"title_name":        user.TitleName,
			"name":              user.Name,
			"email":             user.Email,
			"role":              user.Role,
			"academic_position": user.AcademicPosition,
			"position_date":     user.PositionDate,
			"position_number":   user.PositionNumber,
			"department":        user.Department,
			"faculty":           user.Faculty,
		},
	})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword verifies the current password and stores a new bcrypt hash.
func ChangePassword(c *gin.Context) {
	username := c.GetString("username")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	if ok, msg := utils.ValidatePassword(req.NewPassword); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	var users []models.User
	if err := config.Store.Load(datastore.CollectionUsers, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Cannot load users"})
		return
	}

	for i := range users {
		if users[i].Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(req.CurrentPassword)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "รหัสผ่านปัจจุบันไม่ถูกต้อง"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Cannot hash password"})
			return
		}
		users[i].PasswordHash = string(hash)
		if err := config.Store.Save(datastore.CollectionUsers, users); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Cannot save users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "เปลี่ยนรหัสผ่านเรียบร้อยแล้ว"})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
}

func findUser(username string) (*models.User, error) {
	var users []models.User
	if err := config.Store.Load(datastore.CollectionUsers, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}
