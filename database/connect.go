package database

import (
	"fmt"
	"restaurant_pos/config"
	"restaurant_pos/model"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigOr("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Account{},
		&model.Category{},
		&model.Product{},
		&model.Table{},
		&model.Order{},
		&model.OrderItem{},
		&model.CashSession{},
		&model.CashMovement{},
	)
	fmt.Println("Database Migrated")

	// AutoMigrate cannot express a partial index. The register check in the
	// handler is advisory only; this makes two concurrent opens impossible.
	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS one_open_session ON cash_sessions (status) WHERE status = 'abierta'").Error; err != nil {
		panic("failed to create one_open_session index")
	}

	SeedData(DB)
}
