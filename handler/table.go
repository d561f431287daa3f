package handler

import (
	"errors"
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// FetchTablesSnapshot loads every table ordered by zone, for the initial
// websocket payload and the floor map endpoint.
func FetchTablesSnapshot() ([]model.Table, error) {
	var tables []model.Table
	err := database.DB.Order("zone ASC, id ASC").Find(&tables).Error
	return tables, err
}

func GetTables(c *fiber.Ctx) error {
	type FilterTable struct {
		Zone   *string `query:"zone"`
		Status *string `query:"status"`
	}
	filterInput := new(FilterTable)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Table{})
	if filterInput.Zone != nil {
		condition = condition.Where("zone = ?", *filterInput.Zone)
	}
	if filterInput.Status != nil {
		condition = condition.Where("status = ?", *filterInput.Status)
	}

	var tables []model.Table
	condition.Order("zone ASC, id ASC").Find(&tables)

	return utils.SuccessResponse(c, fiber.StatusOK, tables)
}

func GetTable(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	db := database.DB
	var table model.Table
	if err := db.Preload("CurrentOrder.Items").First(&table, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

// GetZones returns the distinct zones in display order.
func GetZones(c *fiber.Ctx) error {
	var zones []string
	database.DB.Model(&model.Table{}).Distinct("zone").Order("zone ASC").Pluck("zone", &zones)
	return utils.SuccessResponse(c, fiber.StatusOK, zones)
}

func CreateTable(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateTable").(model.CreateTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newTable := new(model.Table)
	copier.Copy(&newTable, &input)
	newTable.Status = constants.TableLibre
	if err := db.Create(&newTable).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	PublishEvent(TopicMesas, "table_created", newTable)
	return utils.SuccessResponse(c, fiber.StatusOK, newTable)
}

func UpdateTable(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputUpdateTable").(model.UpdateTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	tableId, ok := c.Locals("tableId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse tableId fail"))
	}

	var table model.Table
	if err := db.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	updateMap := map[string]interface{}{}
	if input.Name != nil {
		updateMap["name"] = *input.Name
	}
	if input.Zone != nil {
		updateMap["zone"] = *input.Zone
	}
	if input.Seats != nil {
		updateMap["seats"] = *input.Seats
	}

	if len(updateMap) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, "Sin cambios")
	}

	if err := db.Model(&table).Updates(updateMap).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	db.First(&table, tableId)

	PublishEvent(TopicMesas, "table_updated", table)
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func DeleteTables(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	db := database.DB

	// Occupied tables cannot be removed from the floor map.
	var busyCount int64
	db.Model(&model.Table{}).
		Where("id IN ? AND status <> ?", input.IDs, constants.TableLibre).
		Count(&busyCount)
	if busyCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Hay mesas ocupadas en la selección", nil)
	}

	if err := db.Delete(&model.Table{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	PublishEvent(TopicMesas, "tables_deleted", input.IDs)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}

// PreCheck moves an occupied table to pagando and prints the pre-bill.
func PreCheck(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	db := database.DB
	var table model.Table
	if err := db.Preload("CurrentOrder.Items").First(&table, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if table.Status == constants.TableLibre || table.CurrentOrder == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ORDER_NOT_ACTIVE, errors.New("table has no active order"))
	}

	if err := db.Model(&table).Update("status", constants.TablePagando).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	table.Status = constants.TablePagando

	if err := helper.PrintPreCuenta(table.CurrentOrder, table.Name); err != nil {
		// Printing failure never blocks the state change, just report it.
		PublishEvent(TopicMesas, "table_updated", table)
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"table":      table,
			"printError": err.Error(),
		})
	}

	PublishEvent(TopicMesas, "table_updated", table)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"table": table})
}

// TransferTable moves the whole occupancy of a table to a free one inside a
// single transaction. Active orders follow the party to the new table.
func TransferTable(c *fiber.Ctx) error {
	sourceId, ok := c.Locals("tableId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse tableId fail"))
	}
	input, ok := c.Locals("inputTransferTable").(model.TransferTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var source, target model.Table
	if err := tx.First(&source, sourceId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if err := tx.First(&target, input.TargetTableId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "La mesa destino no existe", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if source.IsFree() {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_ALREADY_FREE, errors.New("source table is free"))
	}
	if !target.IsFree() {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_NOT_FREE, errors.New("target table is busy"))
	}

	occ := source.TakeOccupancy()
	target.ApplyOccupancy(occ)

	// Active orders follow the party.
	if err := tx.Model(&model.Order{}).
		Where("table_id = ? AND status NOT IN ?", source.ID, []constants.OrderStatus{constants.OrderPagado, constants.OrderAnulado}).
		Update("table_id", target.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	if err := tx.Save(&source).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	if err := tx.Save(&target).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	PublishEvent(TopicMesas, "table_updated", source)
	PublishEvent(TopicMesas, "table_updated", target)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"source": source,
		"target": target,
	})
}
