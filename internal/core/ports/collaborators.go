package ports

import (
	"context"
	"errors"

	"farmsale/internal/core/domain/model/invoice"
)

// ErrShareCancelled is returned by a ShareGateway when the user abandons the
// share dialog. Distinguishable from a genuine failure: the caller skips the
// invoiced transition without reporting an error.
var ErrShareCancelled = errors.New("sharing was cancelled")

// DocumentGenerator renders an invoice document. The core neither knows nor
// cares about the output format; it only receives an opaque location.
type DocumentGenerator interface {
	// Generate renders the document and returns its location.
	Generate(ctx context.Context, doc invoice.Document) (string, error)
}

// ShareGateway hands a generated document to the user (share sheet, printer).
// Returns ErrShareCancelled when the user backs out.
type ShareGateway interface {
	Share(ctx context.Context, location string) error
}
