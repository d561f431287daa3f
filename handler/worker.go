package handler

import (
	"log"
	"restaurant_pos/config"
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/model"
	"strconv"
	"time"
)

// SweepStalePagando returns tables stuck in pagando back to ocupada after the
// timeout. A bill printed but never settled should not block the table view.
func SweepStalePagando() {
	db := database.DB

	hours, err := strconv.Atoi(config.ConfigOr("PAGANDO_TIMEOUT_HOURS", "2"))
	if err != nil || hours <= 0 {
		hours = 2
	}
	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)

	var stale []model.Table
	if err := db.Where("status = ? AND updated_at < ?", constants.TablePagando, cutoff).
		Find(&stale).Error; err != nil {
		log.Printf("stale pagando sweep query failed: %v", err)
		return
	}

	for _, table := range stale {
		if err := db.Model(&table).Update("status", constants.TableOcupada).Error; err != nil {
			log.Printf("failed to reset table %d from pagando: %v", table.ID, err)
			continue
		}
		table.Status = constants.TableOcupada
		log.Printf("table %d back to ocupada after stale pagando", table.ID)
		PublishEvent(TopicMesas, "table_updated", table)
	}
}

func StartStalePagandoWorker() {
	ticker := time.NewTicker(5 * time.Minute)
	go func() {
		for range ticker.C {
			SweepStalePagando()
		}
	}()
}
