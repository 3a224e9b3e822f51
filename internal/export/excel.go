package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"printflow/internal/domain"
)

const (
	dashboardSheet = "Tableau de bord"
	dossierSheet   = "Dossiers"
)

// WriteDashboardWorkbook writes the admin dashboard as an xlsx workbook:
// one sheet of aggregate counts, one sheet listing the dossiers behind them.
func WriteDashboardWorkbook(w io.Writer, stats *domain.DashboardStats, dossiers []domain.Dossier) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", dashboardSheet)

	rows := [][]any{
		{"Indicateur", "Valeur"},
		{"Dossiers au total", stats.TotalDossiers},
		{domain.StatusEnCours.Label(), stats.EnCours},
		{domain.StatusPretImpression.Label(), stats.PretImpression},
		{domain.StatusEnImpression.Label(), stats.EnImpression},
		{domain.StatusPretLivraison.Label(), stats.PretLivraison},
		{domain.StatusEnLivraison.Label(), stats.EnLivraison},
		{domain.StatusLivre.Label(), stats.Livre},
		{domain.StatusTermine.Label(), stats.Termine},
		{domain.StatusARevoir.Label(), stats.ARevoir},
		{"Machine Roland", stats.RolandDossiers},
		{"Machine Xerox", stats.XeroxDossiers},
		{"Devis en attente", stats.PendingDevis},
		{"Paiements encaissés", stats.TotalPayments},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("dashboard cell %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(dashboardSheet, cell, &row); err != nil {
			return fmt.Errorf("dashboard row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet(dossierSheet); err != nil {
		return fmt.Errorf("creating dossier sheet: %w", err)
	}
	header := []any{"Numéro de commande", "Client", "Description", "Statut", "Machine", "Créé le"}
	if err := f.SetSheetRow(dossierSheet, "A1", &header); err != nil {
		return fmt.Errorf("dossier header: %w", err)
	}
	for i := range dossiers {
		d := &dossiers[i]
		row := []any{
			d.OrderNumber,
			d.ClientName,
			d.Description,
			d.Status.Label(),
			machineLabel(d.MachineType),
			formatDate(d.CreatedAt),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("dossier cell %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(dossierSheet, cell, &row); err != nil {
			return fmt.Errorf("dossier row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}
