package authentication

import (
	"errors"
	"time"

	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateDoctorToken issues a signed session token for a doctor.
func GenerateDoctorToken(doctorID uint, email string) (string, error) {
	claims := &models.DoctorClaims{
		DoctorID: doctorID,
		Email:    email,
		Role:     roleDoctor,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// AuthenticateDoctor parses and validates a doctor session token.
func AuthenticateDoctor(signedToken string) (*models.DoctorClaims, error) {
	var claims models.DoctorClaims
	token, err := jwt.ParseWithClaims(signedToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Role != roleDoctor {
		return nil, errWrongRole
	}
	return &claims, nil
}

func DoctorAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Doctor authorization is missing"})
			return
		}
		if isRevoked(token) {
			c.AbortWithStatusJSON(401, gin.H{"error": "Session has been logged out"})
			return
		}

		claims, err := AuthenticateDoctor(token)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": err.Error()})
			return
		}
		c.Set("doctorID", claims.DoctorID)
		c.Set("token", token)
		if claims.ExpiresAt != nil {
			c.Set("tokenExpiry", claims.ExpiresAt.Time)
		}
	}
}
