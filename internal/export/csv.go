package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"printflow/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// dossierColumns defines the CSV header row for dossier exports.
var dossierColumns = []string{
	"Numéro de commande",
	"Client",
	"Description",
	"Statut",
	"Commentaire",
	"Machine",
	"Créé le",
	"Mis à jour le",
}

// CSVWriter wraps csv.Writer for exporting dossiers as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the dossier header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(dossierColumns)
}

// WriteDossiers converts a batch of dossiers to CSV rows and writes them.
func (w *CSVWriter) WriteDossiers(dossiers []domain.Dossier) error {
	for i := range dossiers {
		if err := w.csv.Write(dossierToRow(&dossiers[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func dossierToRow(d *domain.Dossier) []string {
	return []string{
		d.OrderNumber,
		d.ClientName,
		d.Description,
		d.Status.Label(),
		d.StatusComment,
		machineLabel(d.MachineType),
		formatDate(d.CreatedAt),
		formatDate(d.UpdatedAt),
	}
}

func machineLabel(m domain.MachineType) string {
	switch m {
	case domain.MachineRoland:
		return "Roland"
	case domain.MachineXerox:
		return "Xerox"
	}
	return ""
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006 15:04")
}

// ExportFileName builds a timestamped export file name, e.g.
// dossiers_2026-08-30.csv.
func ExportFileName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().UTC().Format("2006-01-02"), ext)
}
