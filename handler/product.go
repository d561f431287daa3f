package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"mime/multipart"
	"restaurant_pos/config"
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"
	"sort"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetProducts(c *fiber.Ctx) error {
	filterInput := new(model.FilterProductInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Product{})
	if filterInput.Search != nil && *filterInput.Search != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(*filterInput.Search)+"%")
	}
	if filterInput.CategoryId != nil {
		condition = condition.Where("category_id = ?", *filterInput.CategoryId)
	}
	if filterInput.Active != nil {
		condition = condition.Where("active = ?", *filterInput.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var products []model.Product
	condition.Preload("Category").Order("id ASC").Find(&products)
	response := &model.ResponseCustom{
		Rows:       products,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetProduct(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	db := database.DB
	var product model.Product
	if err := db.Preload("Category").First(&product, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func GetProductBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	db := database.DB
	var product model.Product
	if err := db.Preload("Category").Where("slug = ?", slug).First(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateProduct(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateProduct").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newProduct := new(model.Product)
	copier.Copy(&newProduct, &input)
	newProduct.Slug = helper.GenerateUniqueProductSlug(db, input.Name, 0)
	newProduct.Active = true
	if err := db.Create(&newProduct).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Category").First(&newProduct, newProduct.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, newProduct)
}

func UpdateProduct(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputUpdateProduct").(model.UpdateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	productId, ok := c.Locals("productId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse productId fail"))
	}

	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	updateMap := map[string]interface{}{}
	if input.Name != nil {
		updateMap["name"] = *input.Name
		updateMap["slug"] = helper.GenerateUniqueProductSlug(db, *input.Name, productId)
	}
	if input.CategoryId != nil {
		updateMap["category_id"] = *input.CategoryId
	}
	if input.Price != nil {
		updateMap["price"] = *input.Price
	}
	if input.Stock != nil {
		updateMap["stock"] = *input.Stock
	}
	if input.Active != nil {
		updateMap["active"] = *input.Active
	}
	if input.ImageUrl != nil {
		updateMap["image_url"] = *input.ImageUrl
	}

	if len(updateMap) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, "Sin cambios")
	}

	if err := db.Model(&product).Updates(updateMap).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	db.Preload("Category").First(&product, productId)

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProducts(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	db := database.DB
	if err := db.Delete(&model.Product{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}

// UploadProductImage uploads the menu photo to Cloudinary and stores its URL.
func UploadProductImage(c *fiber.Ctx) error {
	productId := c.Locals("productId").(uint)
	file, ok := c.Locals("imageFile").(*multipart.FileHeader)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse imageFile fail"))
	}
	cld, ok := c.Locals("cld").(*cloudinary.Cloudinary)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse cld fail"))
	}

	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "No se pudo leer el archivo", err)
	}
	defer reader.Close()

	uploadResult, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder:       "products",
		PublicID:     fmt.Sprintf("product_%d_%d", productId, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error al subir la imagen", err)
	}

	db := database.DB
	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if err := db.Model(&product).Update("image_url", uploadResult.SecureURL).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	db.Preload("Category").First(&product, productId)

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// GenerateSignature signs direct browser uploads to Cloudinary.
func GenerateSignature(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	type SigParams struct {
		Folder       string `json:"folder"`
		PublicID     string `json:"public_id"`
		ResourceType string `json:"resource_type"` // parsed but never signed
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = timestampStr

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Cloudinary signs the raw sorted query string plus the API secret.
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(config.Config("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}
