package repositories

import (
	"context"
	"errors"
	"fmt"

	"depositguard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LienRepository reads and maintains the lien and incident registry.
type LienRepository interface {
	// FindLien returns nil, nil when no record exists for the address.
	FindLien(ctx context.Context, district, address string) (*models.LienRecord, error)
	UpsertLien(ctx context.Context, rec *models.LienRecord) error
	// CountIncidents counts incidents in the same neighborhood, or at the
	// same address when the neighborhood is unknown.
	CountIncidents(ctx context.Context, district, neighborhood, address string) (int64, error)
	CreateIncident(ctx context.Context, rec *models.IncidentRecord) error
}

type lienRepository struct {
	db *gorm.DB
}

func NewLienRepository(db *gorm.DB) LienRepository {
	return &lienRepository{db: db}
}

func (r *lienRepository) FindLien(ctx context.Context, district, address string) (*models.LienRecord, error) {
	var rec models.LienRecord
	err := r.db.WithContext(ctx).
		Where("district = ? AND address = ?", district, address).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query lien record: %w", err)
	}
	return &rec, nil
}

func (r *lienRepository) UpsertLien(ctx context.Context, rec *models.LienRecord) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "district"}, {Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"arrears_amount", "senior_lien_ratio_pct", "arrears_category", "updated_at",
		}),
	}).Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to upsert lien record: %w", err)
	}
	return nil
}

func (r *lienRepository) CountIncidents(ctx context.Context, district, neighborhood, address string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.IncidentRecord{}).Where("district = ?", district)
	if neighborhood != "" {
		q = q.Where("neighborhood = ?", neighborhood)
	} else {
		q = q.Where("address = ?", address)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return n, nil
}

func (r *lienRepository) CreateIncident(ctx context.Context, rec *models.IncidentRecord) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create incident record: %w", err)
	}
	return nil
}
