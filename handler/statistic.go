package handler

import (
	"errors"
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetAdminStats(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB

	type TopProduct struct {
		ProductName string  `json:"productName"`
		Quantity    int64   `json:"quantity"`
		Revenue     float64 `json:"revenue"`
	}

	type Stats struct {
		Tables   int64 `json:"tables"`
		Products int64 `json:"products"`
		Accounts int64 `json:"accounts"`

		TodayRevenue  float64 `json:"todayRevenue"`
		TodayOrders   int64   `json:"todayOrders"`
		AverageTicket float64 `json:"averageTicket"`
		BusyTables    int64   `json:"busyTables"`
		RevenueGrowth float64 `json:"revenueGrowth"` // %
		OrdersGrowth  float64 `json:"ordersGrowth"`  // %

		TopProducts []TopProduct `json:"topProducts"`
	}

	var stats Stats
	todayStart, todayEnd := utils.DayBounds(time.Now().In(time.Local))

	db.Model(&model.Table{}).Count(&stats.Tables)
	db.Model(&model.Product{}).Where("active = ?", true).Count(&stats.Products)
	db.Model(&model.Account{}).Where("active = ?", true).Count(&stats.Accounts)
	db.Model(&model.Table{}).Where("status <> ?", constants.TableLibre).Count(&stats.BusyTables)

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE status = 'pagado'
          AND paid_at BETWEEN ? AND ?
    `, todayStart, todayEnd).Scan(&stats.TodayRevenue)

	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE status = 'pagado'
          AND paid_at BETWEEN ? AND ?
    `, todayStart, todayEnd).Scan(&stats.TodayOrders)

	if stats.TodayOrders > 0 {
		stats.AverageTicket = utils.RoundMoney(stats.TodayRevenue / float64(stats.TodayOrders))
	}

	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayEnd.AddDate(0, 0, -1)

	var yesterdayRevenue float64
	var yesterdayOrders int64

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE status = 'pagado'
          AND paid_at BETWEEN ? AND ?
    `, yesterdayStart, yesterdayEnd).Scan(&yesterdayRevenue)

	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE status = 'pagado'
          AND paid_at BETWEEN ? AND ?
    `, yesterdayStart, yesterdayEnd).Scan(&yesterdayOrders)

	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, yesterdayRevenue)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.TodayOrders), float64(yesterdayOrders))

	db.Raw(`
        SELECT oi.product_name, SUM(oi.quantity) as quantity, SUM(oi.subtotal) as revenue
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        WHERE o.status = 'pagado'
          AND o.paid_at BETWEEN ? AND ?
        GROUP BY oi.product_name
        ORDER BY quantity DESC
        LIMIT 5
    `, todayStart, todayEnd).Scan(&stats.TopProducts)

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
