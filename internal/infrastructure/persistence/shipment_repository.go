package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/commerce/fulfillsync/internal/domain/ordering"
	"github.com/commerce/fulfillsync/internal/domain/shared"
	"github.com/commerce/fulfillsync/internal/infrastructure/persistence/models"
)

// GormShipmentRepository implements ShipmentRepository using GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// FindByID finds a shipment by its ID, loading its items
func (r *GormShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Shipment, error) {
	var model models.ShipmentModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrderAndTracking finds every shipment on an order with the given
// tracking number
func (r *GormShipmentRepository) FindByOrderAndTracking(ctx context.Context, orderID uuid.UUID, trackingNumber string) ([]ordering.Shipment, error) {
	var shipmentModels []models.ShipmentModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ? AND tracking_number = ?", orderID, trackingNumber).
		Find(&shipmentModels).Error; err != nil {
		return nil, err
	}

	shipments := make([]ordering.Shipment, len(shipmentModels))
	for i, model := range shipmentModels {
		shipments[i] = *model.ToDomain()
	}
	return shipments, nil
}

// Save creates a shipment together with its items
func (r *GormShipmentRepository) Save(ctx context.Context, shipment *ordering.Shipment) error {
	if len(shipment.Items) == 0 {
		return ordering.ErrShipmentWithoutItems
	}
	model := models.ShipmentModelFromDomain(shipment)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing shipment. Items are replaced in
// full; the importer never mutates allocations after creation.
func (r *GormShipmentRepository) Update(ctx context.Context, shipment *ordering.Shipment) error {
	model := models.ShipmentModelFromDomain(shipment)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ShipmentModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"tracking_number": model.TrackingNumber,
				"total_weight":    model.TotalWeight,
				"admin_comment":   model.AdminComment,
				"shipped_at":      model.ShippedAt,
				"delivered_at":    model.DeliveredAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormShipmentRepository implements ShipmentRepository
var _ ordering.ShipmentRepository = (*GormShipmentRepository)(nil)
