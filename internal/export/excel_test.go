package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"printflow/internal/domain"
)

func TestWriteDashboardWorkbook(t *testing.T) {
	stats := &domain.DashboardStats{
		TotalDossiers:  12,
		EnCours:        3,
		PretImpression: 2,
		EnImpression:   1,
		PretLivraison:  1,
		EnLivraison:    1,
		Livre:          2,
		Termine:        1,
		ARevoir:        1,
		RolandDossiers: 7,
		XeroxDossiers:  5,
		PendingDevis:   4,
		TotalPayments:  1234.50,
	}
	dossiers := []domain.Dossier{sampleDossier()}

	var buf bytes.Buffer
	require.NoError(t, WriteDashboardWorkbook(&buf, stats, dossiers))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Tableau de bord", "Dossiers"}, f.GetSheetList())

	rows, err := f.GetRows("Tableau de bord")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Indicateur", "Valeur"}, rows[0])
	assert.Equal(t, []string{"Dossiers au total", "12"}, rows[1])

	byLabel := map[string]string{}
	for _, row := range rows[1:] {
		if len(row) == 2 {
			byLabel[row[0]] = row[1]
		}
	}
	assert.Equal(t, "3", byLabel["En cours de préparation"])
	assert.Equal(t, "7", byLabel["Machine Roland"])
	assert.Equal(t, "4", byLabel["Devis en attente"])

	dossierRows, err := f.GetRows("Dossiers")
	require.NoError(t, err)
	require.Len(t, dossierRows, 2)
	assert.Equal(t, []string{"Numéro de commande", "Client", "Description", "Statut", "Machine", "Créé le"}, dossierRows[0])
	assert.Equal(t, "CMD-2026-1A2B3C4D", dossierRows[1][0])
	assert.Equal(t, "Prêt pour impression", dossierRows[1][3])
	assert.Equal(t, "Roland", dossierRows[1][4])
}
