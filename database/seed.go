package database

import (
	"fmt"
	"log"
	"restaurant_pos/constants"
	"restaurant_pos/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "admin123"
	}
	accounts := []model.Account{
		{Username: "admin", Password: HashPassword, FullName: "Administrador", Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Entradas", Station: "cocina"},
		{Name: "Platos de fondo", Station: "cocina"},
		{Name: "Parrillas", Station: "cocina"},
		{Name: "Postres", Station: "cocina"},
		{Name: "Bebidas", Station: "barra"},
		{Name: "Cócteles", Station: "barra"},
	}
	for i := range categories {
		if err := db.Where(model.Category{Name: categories[i].Name}).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed data for category:", categories[i].Name, "error:", err)
		}
	}

	// Four zones matching the floor layout of the dining room.
	zones := []struct {
		Zone  string
		Count int
		Seats int
	}{
		{"Salón Principal", 8, 4},
		{"Terraza", 6, 4},
		{"Barra", 4, 2},
		{"VIP", 2, 8},
	}
	for _, z := range zones {
		for i := 1; i <= z.Count; i++ {
			table := model.Table{
				Name:   fmt.Sprintf("Mesa %s %d", z.Zone, i),
				Zone:   z.Zone,
				Seats:  z.Seats,
				Status: constants.TableLibre,
			}
			if err := db.Where(model.Table{Name: table.Name}).FirstOrCreate(&table).Error; err != nil {
				log.Println("failed to seed data for table:", table.Name, "error:", err)
			}
		}
	}

	products := []model.Product{
		{Name: "Ceviche clásico", CategoryId: categories[0].ID, Price: 28, Stock: 30},
		{Name: "Causa limeña", CategoryId: categories[0].ID, Price: 18, Stock: 25},
		{Name: "Lomo saltado", CategoryId: categories[1].ID, Price: 32, Stock: 40},
		{Name: "Ají de gallina", CategoryId: categories[1].ID, Price: 26, Stock: 35},
		{Name: "Anticuchos", CategoryId: categories[2].ID, Price: 24, Stock: 30},
		{Name: "Suspiro limeño", CategoryId: categories[3].ID, Price: 12, Stock: 20},
		{Name: "Chicha morada", CategoryId: categories[4].ID, Price: 8, Stock: 100},
		{Name: "Inca Kola 500ml", CategoryId: categories[4].ID, Price: 6, Stock: 120},
		{Name: "Pisco sour", CategoryId: categories[5].ID, Price: 22, Stock: 50},
	}
	for i := range products {
		products[i].Slug = slug.Make(products[i].Name)
		products[i].Active = true
		if err := db.Where(model.Product{Name: products[i].Name}).FirstOrCreate(&products[i]).Error; err != nil {
			log.Println("failed to seed data for product:", products[i].Name, "error:", err)
		}
	}
}
