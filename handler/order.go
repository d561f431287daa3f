package handler

import (
	"errors"
	"log"
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SendOrder registers the items a waiter just sent to the kitchen. When the
// table already has an order still in cocinando the items are merged into it,
// so two waiters serving the same party never split the ticket.
func SendOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSendOrder").(model.SendOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	db := database.DB

	// No sales without an open register.
	var session model.CashSession
	if err := db.Where("status = ?", constants.SessionAbierta).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CAJA_NOT_OPEN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var order model.Order
	var table model.Table
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&table, input.TableId).Error; err != nil {
			return err
		}

		newItems := make([]model.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			var product model.Product
			if err := tx.First(&product, item.ProductId).Error; err != nil {
				return err
			}
			if !product.Active {
				return errors.New(constants.INSUFFICIENT_STOCK)
			}

			// Conditional decrement keeps the check and the write atomic, so
			// two waiters cannot both take the last portion.
			res := tx.Model(&model.Product{}).
				Where("id = ? AND stock >= ?", item.ProductId, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errors.New(constants.INSUFFICIENT_STOCK)
			}

			newItems = append(newItems, model.NewOrderItem(product, item))
		}
		addedTotal := model.ItemsTotal(newItems)

		// Merge into the open cocinando order of this table when one exists.
		err := tx.Where("table_id = ? AND status = ?", table.ID, constants.OrderCocinando).First(&order).Error
		switch {
		case err == nil:
			order.MergeItems(newItems)
			if err := tx.Create(&newItems).Error; err != nil {
				return err
			}
			if input.Note != "" {
				order.Note = input.Note
			}
			if err := tx.Save(&order).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			order = model.Order{
				PublicCode: "ORD-" + uuid.New().String()[:8],
				TableId:    table.ID,
				Status:     constants.OrderCocinando,
				Total:      addedTotal,
				Note:       input.Note,
				CreatedBy:  claim.AccountId,
				Items:      newItems,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
		default:
			return err
		}

		table.Status = constants.TableOcupada
		table.Total = utils.RoundMoney(table.Total + addedTotal)
		table.CurrentOrderId = &order.ID
		if table.TimeOpened == nil {
			now := time.Now()
			table.TimeOpened = &now
		}
		return tx.Save(&table).Error
	})
	if err != nil {
		if err.Error() == constants.INSUFFICIENT_STOCK {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INSUFFICIENT_STOCK, err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	db.Preload("Items").First(&order, order.ID)

	if err := helper.PrintComanda(&order, table.Name, claim.Username); err != nil {
		log.Printf("failed to print comanda for %s: %v", order.PublicCode, err)
	}

	PublishEvent(TopicOrdenes, "order_sent", order)
	PublishEvent(TopicMesas, "table_updated", table)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order": order,
		"table": table,
	})
}

func GetOrders(c *fiber.Ctx) error {
	filterInput := new(model.FilterOrderInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Order{})
	if filterInput.Status != nil {
		condition = condition.Where("status = ?", *filterInput.Status)
	}
	if filterInput.TableId != nil {
		condition = condition.Where("table_id = ?", *filterInput.TableId)
	}
	if filterInput.From != nil {
		condition = condition.Where("created_at >= ?", *filterInput.From)
	}
	if filterInput.To != nil {
		condition = condition.Where("created_at <= ?", *filterInput.To)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var orders []model.Order
	condition.Preload("Items").Order("created_at DESC").Find(&orders)
	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrder(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	db := database.DB
	var order model.Order
	if err := db.Preload("Items").Preload("Table").First(&order, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetOrderByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	db := database.DB
	var order model.Order
	if err := db.Preload("Items").Preload("Table").Where("public_code = ?", code).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// GetStationBoard lists the active orders whose items belong to a station
// (cocina or barra), for the preparation screens.
func GetStationBoard(c *fiber.Ctx) error {
	station := c.Params("station")
	if !utils.IsValidValueOfConstant(station, []string{"cocina", "barra"}) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Estación no válida", nil)
	}

	db := database.DB
	var orders []model.Order
	if err := db.
		Preload("Items").
		Preload("Table").
		Where("status IN ?", []constants.OrderStatus{constants.OrderCocinando, constants.OrderPendiente}).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Map products to their station via the category.
	var stationProductIds []uint
	db.Model(&model.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.station = ?", station).
		Pluck("products.id", &stationProductIds)
	stationSet := make(map[uint]bool, len(stationProductIds))
	for _, id := range stationProductIds {
		stationSet[id] = true
	}

	board := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		items := make([]model.OrderItem, 0, len(order.Items))
		for _, item := range order.Items {
			if stationSet[item.ProductId] {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			order.Items = items
			board = append(board, order)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, board)
}

// UpdateOrderStatus moves an order along its lifecycle. Illegal jumps are
// refused, terminal states stay terminal.
func UpdateOrderStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	orderId, ok := c.Locals("orderId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse orderId fail"))
	}

	// Paying and voiding have dedicated flows with their own bookkeeping.
	if input.Status == constants.OrderPagado || input.Status == constants.OrderAnulado {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, errors.New("use the payment or void endpoint"))
	}

	db := database.DB
	var order model.Order
	if err := db.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if !constants.CanTransitionOrder(order.Status, input.Status) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_TRANSITION, errors.New(string(order.Status)+" -> "+string(input.Status)))
	}

	if err := db.Model(&order).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	order.Status = input.Status

	PublishEvent(TopicOrdenes, "order_status", order)
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// FinalizePayment settles the active order of a table. Requires an open cash
// session, frees the table and records everything in one transaction.
func FinalizePayment(c *fiber.Ctx) error {
	input, ok := c.Locals("inputPayment").(model.PaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	tableId, ok := c.Locals("tableId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse tableId fail"))
	}

	db := database.DB

	var session model.CashSession
	if err := db.Where("status = ?", constants.SessionAbierta).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CAJA_NOT_OPEN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var table model.Table
	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&table, tableId).Error; err != nil {
			return err
		}
		if table.CurrentOrderId == nil {
			return errors.New(constants.ORDER_NOT_ACTIVE)
		}
		if err := tx.Preload("Items").First(&order, *table.CurrentOrderId).Error; err != nil {
			return err
		}
		if !constants.CanTransitionOrder(order.Status, constants.OrderPagado) {
			return errors.New(constants.INVALID_TRANSITION)
		}

		now := time.Now()
		order.Status = constants.OrderPagado
		order.PaymentMethod = &input.PaymentMethod
		order.Total = input.SettledTotal(order.Total)
		order.PaidAt = &now
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		table.TakeOccupancy()
		return tx.Save(&table).Error
	})
	if err != nil {
		switch err.Error() {
		case constants.ORDER_NOT_ACTIVE:
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ORDER_NOT_ACTIVE, err)
		case constants.INVALID_TRANSITION:
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_TRANSITION, err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	PublishEvent(TopicOrdenes, "order_paid", order)
	PublishEvent(TopicMesas, "table_updated", table)
	PublishEvent(TopicCaja, "sale_registered", fiber.Map{
		"orderId":       order.ID,
		"total":         order.Total,
		"paymentMethod": input.PaymentMethod,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order": order,
		"table": table,
	})
}

// VoidOrder cancels an order and returns its items to stock. Admin only.
func VoidOrder(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	db := database.DB
	var order model.Order
	var table model.Table
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, id).Error; err != nil {
			return err
		}
		if !constants.CanTransitionOrder(order.Status, constants.OrderAnulado) {
			return errors.New(constants.INVALID_TRANSITION)
		}

		for _, item := range order.Items {
			if err := tx.Model(&model.Product{}).
				Where("id = ?", item.ProductId).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		order.Status = constants.OrderAnulado
		order.VoidedAt = &now
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		// Free the table when this was its live order.
		if err := tx.First(&table, order.TableId).Error; err != nil {
			return err
		}
		if table.CurrentOrderId != nil && *table.CurrentOrderId == order.ID {
			table.TakeOccupancy()
			return tx.Save(&table).Error
		}
		return nil
	})
	if err != nil {
		if err.Error() == constants.INVALID_TRANSITION {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_TRANSITION, err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	PublishEvent(TopicOrdenes, "order_voided", order)
	PublishEvent(TopicMesas, "table_updated", table)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
