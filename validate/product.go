package validate

import (
	"errors"
	"fmt"
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCategoryInput

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

		var count int64
		database.DB.Model(&model.Category{}).Where("name = ?", input.Name).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "La categoría ya existe", nil, "name")
		}

		c.Locals("inputCreateCategory", input)

		return c.Next()
	}
}

func UpdateCategory(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.UpdateCategoryInput
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

		c.Locals("inputUpdateCategory", input)
		c.Locals("categoryId", uint(id))
		return c.Next()
	}
}

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProductInput

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

		var category model.Category
		if err := database.DB.First(&category, input.CategoryId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "La categoría no existe", nil, "categoryId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("inputCreateProduct", input)

		return c.Next()
	}
}

func UpdateProduct(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.UpdateProductInput
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

		if input.CategoryId != nil {
			var category model.Category
			if err := database.DB.First(&category, *input.CategoryId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "La categoría no existe", nil, "categoryId")
				}
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		c.Locals("inputUpdateProduct", input)
		c.Locals("productId", uint(id))
		return c.Next()
	}
}

func UploadProductImage(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
		}

		var product model.Product
		if err := database.DB.First(&product, id).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "El producto no existe", nil)
		}

		file, err := c.FormFile("image")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Falta el archivo de imagen", err)
		}

		cld, err := helper.InitCloudinary()
		if err != nil {
			return utils.ErrorResponse(c, 500, "Error de Cloudinary", err)
		}
		c.Locals("cld", cld)
		c.Locals("productId", uint(id))
		c.Locals("imageFile", file)

		return c.Next()
	}
}
