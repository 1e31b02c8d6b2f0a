package webserver

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Auth struct {
	adminPassword string
	jwtSecret     []byte
}

func NewAuth(adminPassword string, secret []byte) Auth {
	return Auth{adminPassword: adminPassword, jwtSecret: secret}
}

// Login exchanges the admin password for a short-lived bearer token.
func (a Auth) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.adminPassword)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"err": "invalid credentials"})
		return
	}

	token, err := issueJWT("admin", a.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func issueJWT(role string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
