package validate

import (
	"fmt"
	"restaurant_pos/constants"
	"restaurant_pos/model"
	"restaurant_pos/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func SendOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SendOrderInput

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

		if len(input.Items) == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ORDER_EMPTY, nil, "items")
		}

		c.Locals("inputSendOrder", input)

		return c.Next()
	}
}

func UpdateOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Datos de entrada no válidos", err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Datos de entrada no válidos", err)
		}

		if !constants.ValidOrderStatus(input.Status) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Estado de orden no válido", nil, "status")
		}

		c.Locals("inputUpdateOrderStatus", input)
		c.Locals("orderId", uint(id))
		return c.Next()
	}
}

func Payment(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.PaymentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Datos de entrada no válidos", err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Datos de entrada no válidos", err)
		}

		if !constants.ValidPaymentMethod(input.PaymentMethod) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PAY_METHOD, nil, "paymentMethod")
		}

		c.Locals("inputPayment", input)
		c.Locals("tableId", uint(id))
		return c.Next()
	}
}
