package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log"

	"Postboard/internal/auth"
	"Postboard/internal/config"
)

// gentoken prints a bearer token for a user, or a fresh signing secret
//
// Usage:
//
//	go run ./cmd/gentoken -secret          # print a random JWT_SECRET
//	go run ./cmd/gentoken -user 1          # print a token for user 1 signed with JWT_SECRET
func main() {
	userID := flag.Int64("user", 0, "user ID to issue a token for")
	newSecret := flag.Bool("secret", false, "generate a random signing secret instead of a token")
	flag.Parse()

	if *newSecret {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			log.Fatalf("Failed to generate secret: %v", err)
		}
		fmt.Println("JWT_SECRET=" + base64.RawURLEncoding.EncodeToString(buf))
		return
	}

	if *userID <= 0 {
		log.Fatal("-user must be a positive user ID")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	token, err := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL).Issue(*userID)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println(token)
}
