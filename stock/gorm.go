package stock

import (
	"context"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	"gorm.io/gorm"
)

// GormProducts reads products straight from the database so the validator
// always sees live stock, never a page-cached snapshot.
type GormProducts struct {
	DB *gorm.DB
}

func (g GormProducts) ProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := g.DB.WithContext(ctx).First(&product, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
