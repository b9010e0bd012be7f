package authentication

import (
	"errors"
	"time"

	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// GeneratePatientToken issues a signed session token for a patient.
func GeneratePatientToken(patientID uint, email string) (string, error) {
	claims := &models.PatientClaims{
		PatientID: patientID,
		Email:     email,
		Role:      rolePatient,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// AuthenticatePatient parses and validates a patient session token.
func AuthenticatePatient(signedToken string) (*models.PatientClaims, error) {
	var claims models.PatientClaims
	token, err := jwt.ParseWithClaims(signedToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Role != rolePatient {
		return nil, errWrongRole
	}
	return &claims, nil
}

func PatientAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "User authorization is missing"})
			return
		}
		if isRevoked(token) {
			c.AbortWithStatusJSON(401, gin.H{"error": "Session has been logged out"})
			return
		}

		claims, err := AuthenticatePatient(token)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": err.Error()})
			return
		}
		c.Set("patientID", claims.PatientID)
		c.Set("token", token)
		if claims.ExpiresAt != nil {
			c.Set("tokenExpiry", claims.ExpiresAt.Time)
		}
	}
}
