// Package invoice contains the billing-side value objects: the configurable
// invoice text settings and the document data handed to the renderer.
package invoice

import (
	"farmsale/internal/core/domain/model/kernel"
)

// Setting keys as stored in the settings table.
const (
	KeyProductName = "productName"
	KeyFooterNote  = "footerNote"
	KeyClosingText = "closingText"
	KeyThanksText  = "thanksText"
)

// Settings are the configurable text fields printed on every invoice.
type Settings struct {
	ProductName string
	FooterNote  string
	ClosingText string
	ThanksText  string
}

// DefaultSettings returns the texts used when nothing has been configured yet.
func DefaultSettings() Settings {
	return Settings{
		ProductName: "Weihnachtspute",
		FooterNote:  "Bitte beachten Sie, dass die kompostierbaren Säcke nicht zum Einfrieren geeignet sind.",
		ClosingText: "Wir wünschen ein frohes Weihnachtsfest und einen guten Rutsch ins neue Jahr!",
		ThanksText:  "Vielen Dank für Ihr Vertrauen!",
	}
}

// WithDefaults fills every empty field from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	defaults := DefaultSettings()
	if s.ProductName == "" {
		s.ProductName = defaults.ProductName
	}
	if s.FooterNote == "" {
		s.FooterNote = defaults.FooterNote
	}
	if s.ClosingText == "" {
		s.ClosingText = defaults.ClosingText
	}
	if s.ThanksText == "" {
		s.ThanksText = defaults.ThanksText
	}
	return s
}

// Document is everything the document generator needs to render one invoice.
// The core computes the billable weight and total; the renderer only formats.
type Document struct {
	Number         string
	CustomerName   string
	CustomerPhone  string
	SaleDate       kernel.SaleDate
	BillableWeight float64
	PricePerKg     kernel.Price
	Total          float64
	IsHalf         bool
	Settings       Settings
}
