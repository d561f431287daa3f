package helper

import (
	"log"
	"restaurant_pos/config"
	"restaurant_pos/database"
	"restaurant_pos/model"
	"restaurant_pos/utils"
	"strconv"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var stockScheduler gocron.Scheduler

// CheckLowStock mails the owner the list of active products at or below the
// configured threshold.
func CheckLowStock() {
	log.Println("[CRON] CheckLowStock triggered")

	db := database.DB
	threshold, err := strconv.Atoi(config.ConfigOr("LOW_STOCK_THRESHOLD", "5"))
	if err != nil {
		threshold = 5
	}

	var products []model.Product
	if err := db.Where("active = ? AND stock <= ?", true, threshold).
		Order("stock asc").
		Find(&products).Error; err != nil {
		log.Printf("failed to query low stock products: %v", err)
		return
	}
	if len(products) == 0 {
		return
	}

	items := make([]utils.LowStockItem, 0, len(products))
	for _, p := range products {
		items = append(items, utils.LowStockItem{Name: p.Name, Stock: p.Stock})
	}

	to := config.Config("OWNER_EMAIL")
	if to == "" {
		log.Println("OWNER_EMAIL not set, skipping low stock email")
		return
	}
	utils.SendLowStockEmail(to, utils.LowStockData{
		Date:  time.Now().Format("02/01/2006"),
		Items: items,
	})
}

// StartLowStockScheduler runs CheckLowStock nightly at 23:30 Lima time.
func StartLowStockScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("PET", -5*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	stockScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(23, 30, 0),
			),
		),
		gocron.NewTask(CheckLowStock),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("low stock scheduler started (23:30 PET)")
}
