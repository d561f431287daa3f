package handler

import (
	"errors"
	"log"
	"restaurant_pos/config"
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// computeSessionTotals aggregates the sales and manual movements of a session
// between its opening and the given cutoff.
func computeSessionTotals(db *gorm.DB, session *model.CashSession, until time.Time) (model.SessionTotals, error) {
	var totals model.SessionTotals

	type methodSum struct {
		PaymentMethod string
		Sum           float64
		Count         int64
	}
	var sums []methodSum
	err := db.Model(&model.Order{}).
		Select("payment_method, COALESCE(SUM(total), 0) as sum, COUNT(*) as count").
		Where("status = ? AND paid_at >= ? AND paid_at <= ?", constants.OrderPagado, session.OpenedAt, until).
		Group("payment_method").
		Scan(&sums).Error
	if err != nil {
		return totals, err
	}
	for _, s := range sums {
		switch s.PaymentMethod {
		case constants.PAY_EFECTIVO:
			totals.CashSales = s.Sum
		case constants.PAY_TARJETA:
			totals.CardSales = s.Sum
		case constants.PAY_YAPE:
			totals.YapeSales = s.Sum
		}
		totals.OrderCount += s.Count
	}

	var ingresos, egresos float64
	if err := db.Model(&model.CashMovement{}).
		Where("session_id = ? AND type = ?", session.ID, constants.MovementIngreso).
		Select("COALESCE(SUM(amount), 0)").Scan(&ingresos).Error; err != nil {
		return totals, err
	}
	if err := db.Model(&model.CashMovement{}).
		Where("session_id = ? AND type = ?", session.ID, constants.MovementEgreso).
		Select("COALESCE(SUM(amount), 0)").Scan(&egresos).Error; err != nil {
		return totals, err
	}
	totals.TotalIngresos = ingresos
	totals.TotalEgresos = egresos

	totals.Compute(session.OpeningFloat)
	return totals, nil
}

func getOpenSession(db *gorm.DB) (*model.CashSession, error) {
	var session model.CashSession
	if err := db.Where("status = ?", constants.SessionAbierta).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// OpenSession starts the cash register day with an opening float.
// Only one session can be open at a time.
func OpenSession(c *fiber.Ctx) error {
	input, ok := c.Locals("inputOpenSession").(model.OpenSessionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	db := database.DB
	if _, err := getOpenSession(db); err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.CAJA_ALREADY_OPEN, errors.New("session already open"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	session := model.CashSession{
		Status:       constants.SessionAbierta,
		OpenedBy:     claim.AccountId,
		OpeningFloat: input.OpeningFloat,
		OpenedAt:     time.Now(),
	}
	if err := db.Create(&session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	PublishEvent(TopicCaja, "session_opened", session)
	return utils.SuccessResponse(c, fiber.StatusOK, session)
}

// GetCurrentSession returns the open session with its running totals.
func GetCurrentSession(c *fiber.Ctx) error {
	db := database.DB
	session, err := getOpenSession(db)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CAJA_NOT_OPEN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	totals, err := computeSessionTotals(db, session, time.Now())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var movements []model.CashMovement
	db.Where("session_id = ?", session.ID).Order("created_at ASC").Find(&movements)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"session":   session,
		"totals":    totals,
		"movements": movements,
	})
}

func GetSessions(c *fiber.Ctx) error {
	filterInput := new(model.Pagination)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.CashSession{})

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var sessions []model.CashSession
	condition.Order("opened_at DESC").Find(&sessions)
	response := &model.ResponseCustom{
		Rows:       sessions,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetSession(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	db := database.DB
	var session model.CashSession
	if err := db.Preload("Movements").First(&session, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, session)
}

// CreateMovement records a manual cash in or out against the open session.
func CreateMovement(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateMovement").(model.CreateMovementInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	db := database.DB
	session, err := getOpenSession(db)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CAJA_NOT_OPEN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	movement := model.CashMovement{
		SessionId: session.ID,
		Type:      input.Type,
		Amount:    input.Amount,
		Concept:   input.Concept,
		CreatedBy: claim.AccountId,
	}
	if err := db.Create(&movement).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	PublishEvent(TopicCaja, "movement_registered", movement)
	return utils.SuccessResponse(c, fiber.StatusOK, movement)
}

// CloseSession counts the drawer, stores the final totals and variance, then
// prints the arqueo slip and mails the report to the owner.
func CloseSession(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCloseSession").(model.CloseSessionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	db := database.DB
	session, err := getOpenSession(db)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CAJA_NOT_OPEN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Tables still pagando mean unsettled bills.
	var pendingCount int64
	db.Model(&model.Table{}).Where("status = ?", constants.TablePagando).Count(&pendingCount)
	if pendingCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Hay mesas pendientes de pago", errors.New("tables still in pagando"))
	}

	now := time.Now()
	totals, err := computeSessionTotals(db, session, now)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	variance := utils.RoundMoney(input.CountedCash - totals.ExpectedCash)

	session.Status = constants.SessionCerrada
	session.ClosedBy = &claim.AccountId
	session.ClosedAt = &now
	session.ExpectedCash = utils.Ptr(totals.ExpectedCash)
	session.CountedCash = utils.Ptr(input.CountedCash)
	session.Variance = utils.Ptr(variance)
	session.TotalSales = utils.Ptr(totals.TotalSales)
	session.TotalIngresos = utils.Ptr(totals.TotalIngresos)
	session.TotalEgresos = utils.Ptr(totals.TotalEgresos)

	if err := db.Save(session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	arqueo := helper.ArqueoData{
		SessionId:     session.ID,
		OpenedAt:      session.OpenedAt.Format("02/01/2006 15:04"),
		ClosedAt:      now.Format("02/01/2006 15:04"),
		OpeningFloat:  session.OpeningFloat,
		CashSales:     totals.CashSales,
		CardSales:     totals.CardSales,
		YapeSales:     totals.YapeSales,
		TotalSales:    totals.TotalSales,
		TotalIngresos: totals.TotalIngresos,
		TotalEgresos:  totals.TotalEgresos,
		ExpectedCash:  totals.ExpectedCash,
		CountedCash:   input.CountedCash,
		Variance:      variance,
	}
	if err := helper.PrintArqueo(arqueo); err != nil {
		log.Printf("failed to print arqueo for session %d: %v", session.ID, err)
	}

	if ownerEmail := config.Config("OWNER_EMAIL"); ownerEmail != "" {
		utils.SendSessionReportEmail(ownerEmail, utils.SessionReportData{
			SessionId:     session.ID,
			OpenedAt:      arqueo.OpenedAt,
			ClosedAt:      arqueo.ClosedAt,
			OpenedBy:      claim.Username,
			OpeningFloat:  session.OpeningFloat,
			CashSales:     totals.CashSales,
			CardSales:     totals.CardSales,
			YapeSales:     totals.YapeSales,
			TotalSales:    totals.TotalSales,
			TotalIngresos: totals.TotalIngresos,
			TotalEgresos:  totals.TotalEgresos,
			ExpectedCash:  totals.ExpectedCash,
			CountedCash:   input.CountedCash,
			Variance:      variance,
			OrderCount:    totals.OrderCount,
		})
	}

	PublishEvent(TopicCaja, "session_closed", session)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"session": session,
		"totals":  totals,
	})
}
