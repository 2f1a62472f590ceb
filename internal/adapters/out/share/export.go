// Package share hands generated documents to the user. The desktop
// equivalent of a mobile share sheet is an export directory the user watches.
package share

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// ExportShareGateway implements ports.ShareGateway by copying the generated
// document into the export directory.
type ExportShareGateway struct {
	exportDir string
}

// NewExportShareGateway creates a gateway exporting into exportDir.
func NewExportShareGateway(exportDir string) *ExportShareGateway {
	return &ExportShareGateway{exportDir: exportDir}
}

// Share copies the document at location into the export directory. A failed
// copy is a genuine error, never a cancellation.
func (g *ExportShareGateway) Share(_ context.Context, location string) error {
	if err := os.MkdirAll(g.exportDir, 0o755); err != nil {
		return err
	}

	source, err := os.Open(location)
	if err != nil {
		return err
	}
	defer source.Close()

	target, err := os.Create(filepath.Join(g.exportDir, filepath.Base(location)))
	if err != nil {
		return err
	}
	defer target.Close()

	if _, err = io.Copy(target, source); err != nil {
		return err
	}
	return target.Sync()
}
