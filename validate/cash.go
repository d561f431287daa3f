package validate

import (
	"fmt"
	"restaurant_pos/model"

	"github.com/gofiber/fiber/v2"
)

func OpenSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.OpenSessionInput

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

		c.Locals("inputOpenSession", input)

		return c.Next()
	}
}

func CloseSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CloseSessionInput

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

		c.Locals("inputCloseSession", input)

		return c.Next()
	}
}

func CreateMovement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMovementInput

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

		c.Locals("inputCreateMovement", input)

		return c.Next()
	}
}
