package ports

import (
	"context"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/services"
)

// ProductCatalog is the read side of the product module.
type ProductCatalog interface {
	// GetMeasures returns the weight and volume of one unit of a product,
	// or errs.ObjectNotFoundError for unknown or inactive products.
	GetMeasures(ctx context.Context, productID kernel.ID) (services.ProductMeasures, error)
}
