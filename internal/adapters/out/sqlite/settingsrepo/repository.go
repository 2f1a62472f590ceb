package settingsrepo

import (
	"context"

	"farmsale/internal/core/domain/model/invoice"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetInvoiceSettings loads the invoice texts. Keys that were never saved come
// back as empty fields; callers apply defaults via WithDefaults.
func (r *GormSettingsRepository) GetInvoiceSettings(ctx context.Context) (invoice.Settings, error) {
	var dtos []SettingDTO

	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return invoice.Settings{}, err
	}

	return toDomain(dtos), nil
}

// SaveInvoiceSettings upserts all four invoice text keys.
func (r *GormSettingsRepository) SaveInvoiceSettings(
	ctx context.Context, settings invoice.Settings,
) error {
	dtos := fromDomain(settings)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&dtos).Error
}
