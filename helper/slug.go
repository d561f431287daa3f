package helper

import (
	"fmt"
	"restaurant_pos/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueProductSlug builds a slug from the product name, appending a
// counter until it is unique. excludeId skips the product being renamed.
func GenerateUniqueProductSlug(tx *gorm.DB, name string, excludeId uint) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		q := tx.Model(&model.Product{}).Where("slug = ?", result)
		if excludeId != 0 {
			q = q.Where("id <> ?", excludeId)
		}
		q.Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
