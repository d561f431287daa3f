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
)

func GetCategories(c *fiber.Ctx) error {
	db := database.DB
	var categories []model.Category
	db.Order("id ASC").Find(&categories)
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateCategory").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newCategory := new(model.Category)
	copier.Copy(&newCategory, &input)
	if newCategory.Station == "" {
		newCategory.Station = "cocina"
	}
	if err := db.Create(&newCategory).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newCategory)
}

func UpdateCategory(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputUpdateCategory").(model.UpdateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	categoryId, ok := c.Locals("categoryId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse categoryId fail"))
	}

	var category model.Category
	if err := db.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	updateMap := map[string]interface{}{}
	if input.Name != nil {
		updateMap["name"] = *input.Name
	}
	if input.Station != nil {
		updateMap["station"] = *input.Station
	}

	if len(updateMap) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, "Sin cambios")
	}

	if err := db.Model(&category).Updates(updateMap).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	db.First(&category, categoryId)

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func DeleteCategories(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	db := database.DB

	// A category with products keeps its products orphaned, so refuse.
	var inUse int64
	db.Model(&model.Product{}).Where("category_id IN ?", input.IDs).Count(&inUse)
	if inUse > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Hay productos en las categorías seleccionadas", nil)
	}

	if err := db.Delete(&model.Category{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
