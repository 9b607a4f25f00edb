package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
)

// JWTSecret returns the signing key from the environment, generating a
// random one when unset (tokens then won't survive a restart).
func JWTSecret() string {
	if key := os.Getenv("JWT_SECRET"); key != "" {
		return key
	}
	return GenerateRandomKey()
}

func GenerateRandomKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("Failed to generate random key: %v", err)
	}
	return hex.EncodeToString(b)
}
