package helper

import (
	"restaurant_pos/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary builds a client from the CLOUDINARY_* environment variables.
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
}
