package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/fangearhq/fangear-api/config"
	"github.com/fangearhq/fangear-api/internal/domain/entity"
	"github.com/fangearhq/fangear-api/pkg/helpers"
)

// Seeds a demo account and a small catalog covering every filter option
// the product browser offers.
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demo"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (username, password, birthmonth, address, city, state, postal_code, country)
		VALUES ($1, $2, 'January', '100 Main St', 'Charlotte', 'NC', '28202', 'USA')
		ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password
		RETURNING id
	`, username, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d username=%s password=%s\n", userID, username, password)

	products := []entity.Product{
		{Name: "Team USA Jersey", Description: "Official replica jersey", Price: 75, ImageURL: "jersey_usa.png", ProductType: "jersey", Team: "Team USA", Sport: "Olympics"},
		{Name: "Hornets Snapback", Description: "Adjustable cap", Price: 32.50, ImageURL: "hat_hornets.png", ProductType: "hat", Team: "Charlotte Hornets", Sport: "NBA"},
		{Name: "Panthers Jacket", Description: "Sideline windbreaker", Price: 129.99, ImageURL: "jacket_panthers.png", ProductType: "jacket", Team: "Carolina Panthers", Sport: "NFL"},
		{Name: "UNC Shorts", Description: "Practice shorts", Price: 45, ImageURL: "shorts_unc.png", ProductType: "shorts", Team: "University of North Carolina", Sport: "NCAA"},
		{Name: "Hornets Courtside Jacket", Description: "Limited edition", Price: 215, ImageURL: "jacket_hornets.png", ProductType: "jacket", Team: "Charlotte Hornets", Sport: "NBA"},
		{Name: "Team USA T-shirt", Description: "Cotton tee", Price: 24.99, ImageURL: "tshirt_usa.png", ProductType: "t-shirt", Team: "Team USA", Sport: "Olympics"},
		{Name: "Panthers Jersey", Description: "Home jersey", Price: 159.95, ImageURL: "jersey_panthers.png", ProductType: "jersey", Team: "Carolina Panthers", Sport: "NFL"},
	}

	for _, p := range products {
		var id int64
		err := db.QueryRow(`
			INSERT INTO products (name, description, price, image_url, product_type, team, sport)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, p.Name, p.Description, p.Price, p.ImageURL, p.ProductType, p.Team, p.Sport).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed product %q: %v", p.Name, err)
		}
		fmt.Printf("seeded product: id=%d name=%q\n", id, p.Name)
	}
}
