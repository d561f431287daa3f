package handler

import (
	"errors"
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func Me(c *fiber.Ctx) error {
	dataInfo, _, _, _ := helper.GetInfoAccountFromToken(c)
	if dataInfo.AccountId == 0 {
		return nil // response already written
	}

	db := database.DB
	var account model.Account
	if err := db.First(&account, dataInfo.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func GetAccounts(c *fiber.Ctx) error {
	type FilterAccount struct {
		model.Pagination
		SearchKey string  `query:"searchKey"`
		Active    *bool   `query:"active"`
		Role      *string `query:"role"`
	}
	filterInput := new(FilterAccount)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Account{})
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(username) LIKE ? OR LOWER(full_name) LIKE ?",
			"%"+strings.ToLower(filterInput.SearchKey)+"%",
			"%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.Active != nil {
		condition = condition.Where("active = ?", filterInput.Active)
	}
	if filterInput.Role != nil {
		condition = condition.Where("role = ?", filterInput.Role)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var accounts []model.Account
	condition.Order("id ASC").Find(&accounts)
	response := &model.ResponseCustom{
		Rows:       accounts,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateAccount(c *fiber.Ctx) error {
	db := database.DB
	accountInput, ok := c.Locals("inputCreateAccount").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	hash, err := helper.HashPassword(accountInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	newAccount := new(model.Account)
	copier.Copy(&newAccount, &accountInput)
	newAccount.Password = hash
	newAccount.Active = true
	if err := db.Create(&newAccount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newAccount)
}

func UpdateAccount(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputUpdateAccount").(model.UpdateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	accountId, ok := c.Locals("accountId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse accountId fail"))
	}

	var account model.Account
	if err := db.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	updateMap := map[string]interface{}{}

	if input.FullName != nil {
		updateMap["full_name"] = *input.FullName
	}
	if input.Active != nil {
		updateMap["active"] = *input.Active
	}
	if input.Role != nil {
		updateMap["role"] = *input.Role
	}

	if len(updateMap) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, "Sin cambios")
	}

	if err := db.Model(&account).Updates(updateMap).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	db.First(&account, accountId)

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

// ChangePassword lets the logged-in user change their own password.
func ChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputChangePassword").(model.ChangePasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	dataInfo, _, _, _ := helper.GetInfoAccountFromToken(c)
	if dataInfo.AccountId == 0 {
		return nil
	}

	db := database.DB
	var account model.Account
	if err := db.First(&account, dataInfo.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, errors.New("current password does not match"))
	}

	newPasswordHash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}
	account.Password = newPasswordHash
	db.Save(&account)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}
