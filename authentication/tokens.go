package authentication

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/Sayed036/WoodLand-Hospital/configuration"
	"github.com/gin-gonic/gin"
)

// tokenTTL is the session lifetime for all roles.
const tokenTTL = 24 * time.Hour

// Role discriminators baked into every issued token. Each middleware
// only accepts tokens carrying its own role, so a patient session can
// never clear the doctor or admin middleware.
const (
	rolePatient = "patient"
	roleDoctor  = "doctor"
	roleAdmin   = "admin"
)

var errWrongRole = errors.New("token is not valid for this role")

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// RevokeToken blacklists a bearer token in redis until its natural
// expiry, so logout takes effect before the JWT would lapse on its own.
func RevokeToken(token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return configuration.SetRedis("blacklist:"+token, "revoked", ttl)
}

func isRevoked(token string) bool {
	if configuration.Client == nil {
		return false
	}
	_, err := configuration.GetRedis("blacklist:" + token)
	return err == nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
