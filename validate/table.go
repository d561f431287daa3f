package validate

import (
	"fmt"
	"restaurant_pos/constants"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func CreateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTableInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
		}

		c.Locals("inputCreateTable", input)

		return c.Next()
	}
}

func UpdateTable(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.UpdateTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Datos de entrada no válidos", err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Datos de entrada no válidos", err)
		}

		_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
		}

		c.Locals("inputUpdateTable", input)
		c.Locals("tableId", uint(id))
		return c.Next()
	}
}

func TransferTable(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.TransferTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Datos de entrada no válidos", err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Datos de entrada no válidos", err)
		}

		if uint(id) == input.TargetTableId {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "La mesa destino debe ser distinta", nil, "targetTableId")
		}

		c.Locals("tableId", uint(id))
		c.Locals("inputTransferTable", input)
		return c.Next()
	}
}
