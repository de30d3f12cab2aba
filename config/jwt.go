package config

import (
	"os"
	"time"

	"harvestworld/logger"
)

var JWTSecret []byte
var JWTExpiration = 24 * time.Hour

// LoadJWT reads the signing secret from the environment. Call after godotenv.
func LoadJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log := logger.Get()
		log.Fatal().Msg("JWT_SECRET must be set")
	}
	JWTSecret = []byte(secret)
}
