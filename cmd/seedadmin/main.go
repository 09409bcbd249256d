// Seeds the bootstrap admin account. Safe to run repeatedly: an existing
// admin email is left untouched.
package main

import (
	"context"
	"log"
	"time"

	"mediconnect/config"
	"mediconnect/database"
	userRepoPkg "mediconnect/database/repository/user"
	"mediconnect/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()

	adminEmail := config.AppConfig.AdminEmail
	adminPassword := config.AppConfig.AdminPassword
	if adminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set to seed the admin account")
	}

	database.InitDB()
	repo := userRepoPkg.NewMongoUserRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	existing, err := repo.GetByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatalf("failed to check for existing admin: %v", err)
	}
	if existing != nil {
		log.Printf("Admin user already exists: %s", adminEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin := &models.User{
		ID:           uuid.NewString(),
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}
	log.Printf("Admin user created: %s", adminEmail)
}
