package authentication

import (
	"errors"
	"time"

	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateAdminToken issues a signed session token for the admin.
func GenerateAdminToken(email string) (string, error) {
	claims := &models.AdminClaims{
		Email: email,
		Role:  roleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// AuthenticateAdmin parses and validates an admin session token.
func AuthenticateAdmin(signedToken string) (*models.AdminClaims, error) {
	var claims models.AdminClaims
	token, err := jwt.ParseWithClaims(signedToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Role != roleAdmin {
		return nil, errWrongRole
	}
	return &claims, nil
}

func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Admin authorization is missing"})
			return
		}
		if isRevoked(token) {
			c.AbortWithStatusJSON(401, gin.H{"error": "Session has been logged out"})
			return
		}

		claims, err := AuthenticateAdmin(token)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": err.Error()})
			return
		}
		c.Set("adminEmail", claims.Email)
		c.Set("token", token)
		if claims.ExpiresAt != nil {
			c.Set("tokenExpiry", claims.ExpiresAt.Time)
		}
	}
}
