package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/marketconnect/backend/internal/config"
	"github.com/marketconnect/backend/internal/db"
	"github.com/marketconnect/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedCategory struct {
	Name        string
	Icon        string
	Description string
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}

	if err := seedCategories(gdb); err != nil {
		return err
	}
	if err := seedAdmin(gdb); err != nil {
		return err
	}
	return nil
}

func seedCategories(gdb *gorm.DB) error {
	categories := []seedCategory{
		{Name: "Vegetables", Icon: "🥬", Description: "Fresh locally grown vegetables"},
		{Name: "Fruits", Icon: "🍌", Description: "Seasonal fruits"},
		{Name: "Meat", Icon: "🥩", Description: "Fresh pork, beef and poultry"},
		{Name: "Seafood", Icon: "🐟", Description: "Daily catch from local fishers"},
		{Name: "Rice & Grains", Icon: "🌾", Description: "Rice, corn and milled grains"},
		{Name: "Dried Goods", Icon: "🧂", Description: "Dried fish, spices and preserves"},
		{Name: "Baked Goods", Icon: "🍞", Description: "Bread and native delicacies"},
		{Name: "Flowers & Plants", Icon: "🌺", Description: "Cut flowers and ornamental plants"},
	}
	for _, sc := range categories {
		cat := model.Category{CategoryName: sc.Name, Icon: sc.Icon, Description: sc.Description}
		if err := gdb.Where("category_name = ?", sc.Name).FirstOrCreate(&cat).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", sc.Name, err)
		}
	}
	log.Printf("seeded %d categories", len(categories))
	return nil
}

// seedAdmin creates the initial admin account. Skipped unless
// SEED_ADMIN_PASSWORD is set, so reruns on a live database are safe.
func seedAdmin(gdb *gorm.DB) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Printf("SEED_ADMIN_PASSWORD not set; skipping admin account")
		return nil
	}
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@marketconnect.ph"
	}

	var existing model.User
	err := gdb.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("admin %s already exists; skipping", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := model.User{
		Email:         email,
		PasswordHash:  string(hash),
		UserType:      model.UserTypeAdmin,
		FullName:      "Platform Admin",
		IsActive:      true,
		EmailVerified: true,
	}
	if err := gdb.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Printf("created admin %s", email)
	return nil
}
