package archiverepo

import (
	"context"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryArchive implements the DeliveryArchive port using GORM.
type GormDeliveryArchive struct {
	db *gorm.DB
}

// NewGormDeliveryArchive creates a new GORM delivery archive.
func NewGormDeliveryArchive(db *gorm.DB) *GormDeliveryArchive {
	return &GormDeliveryArchive{db: db}
}

// Add appends one completed delivery to the archive.
func (r *GormDeliveryArchive) Add(ctx context.Context, record services.CompletedDelivery) error {
	if record.ParcelID == "" {
		return errs.NewValueIsRequiredError("parcelID")
	}

	dto := fromRecord(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll retrieves every archived delivery in completion order.
func (r *GormDeliveryArchive) GetAll(ctx context.Context) ([]services.CompletedDelivery, error) {
	var dtos []CompletedDeliveryDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]services.CompletedDelivery, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toRecord(dto))
	}

	return records, nil
}
