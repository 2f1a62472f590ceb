// Package settingsrepo persists the invoice texts in the key-value settings
// table.
package settingsrepo

import (
	"farmsale/internal/core/domain/model/invoice"
)

// SettingDTO maps one settings row.
type SettingDTO struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// TableName overrides GORM's naming convention.
func (SettingDTO) TableName() string {
	return "settings"
}

func fromDomain(settings invoice.Settings) []SettingDTO {
	return []SettingDTO{
		{Key: invoice.KeyProductName, Value: settings.ProductName},
		{Key: invoice.KeyFooterNote, Value: settings.FooterNote},
		{Key: invoice.KeyClosingText, Value: settings.ClosingText},
		{Key: invoice.KeyThanksText, Value: settings.ThanksText},
	}
}

func toDomain(dtos []SettingDTO) invoice.Settings {
	var settings invoice.Settings
	for _, dto := range dtos {
		switch dto.Key {
		case invoice.KeyProductName:
			settings.ProductName = dto.Value
		case invoice.KeyFooterNote:
			settings.FooterNote = dto.Value
		case invoice.KeyClosingText:
			settings.ClosingText = dto.Value
		case invoice.KeyThanksText:
			settings.ThanksText = dto.Value
		}
	}
	return settings
}
