// Package productrepo reads product measures from the product table owned by
// the catalog module. It never writes products.
package productrepo

import (
	"context"
	"errors"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/services"
	"negotiation/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductCatalog implements ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetMeasures loads the weight and volume of one unit of an active product.
func (c *GormProductCatalog) GetMeasures(ctx context.Context, productID kernel.ID) (services.ProductMeasures, error) {
	if err := productID.Validate("productID"); err != nil {
		return services.ProductMeasures{}, err
	}

	var dto ProductDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ? AND active", productID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ProductMeasures{}, errs.NewObjectNotFoundError("product", productID.Int64())
		}
		return services.ProductMeasures{}, err
	}

	return services.ProductMeasures{
		NominalWeight:    dto.NominalWeight,
		VolumetricWeight: dto.volumetricWeight(),
		UnitVolume:       dto.unitVolume(),
	}, nil
}
