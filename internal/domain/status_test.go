package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus_CanonicalPassthrough(t *testing.T) {
	for _, s := range AllStatuses {
		assert.Equal(t, s, NormalizeStatus(string(s)), "canonical value %q must map to itself", s)
	}
}

func TestNormalizeStatus_FoldsAccentsCaseAndSeparators(t *testing.T) {
	cases := []struct {
		raw  string
		want DossierStatus
	}{
		{"EN COURS", StatusEnCours},
		{"En Cours", StatusEnCours},
		{"en-cours", StatusEnCours},
		{"Prêt Impression", StatusPretImpression},
		{"PRET_IMPRESSION", StatusPretImpression},
		{"Prêt-Impression", StatusPretImpression},
		{"En Impression", StatusEnImpression},
		{"Prêt Livraison", StatusPretLivraison},
		{"En Livraison", StatusEnLivraison},
		{"Livré", StatusLivre},
		{"LIVRE", StatusLivre},
		{"Terminé", StatusTermine},
		{"À revoir", StatusARevoir},
		{"A REVOIR", StatusARevoir},
		{"  en   cours  ", StatusEnCours},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeStatus(tc.raw), "raw %q", tc.raw)
	}
}

func TestNormalizeStatus_LegacySpellings(t *testing.T) {
	cases := []struct {
		raw  string
		want DossierStatus
	}{
		{"EN PRÉPARATION", StatusEnCours},
		{"en_preparation", StatusEnCours},
		{"préparation", StatusEnCours},
		{"Prêt pour impression", StatusPretImpression},
		{"pret_pour_impression", StatusPretImpression},
		{"Impression en cours", StatusEnImpression},
		{"Prêt pour livraison", StatusPretLivraison},
		{"Livraison en cours", StatusEnLivraison},
		{"Livrée", StatusLivre},
		{"Terminée", StatusTermine},
		{"A corriger", StatusARevoir},
		{"à_corriger", StatusARevoir},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeStatus(tc.raw), "raw %q", tc.raw)
	}
}

func TestNormalizeStatus_Idempotent(t *testing.T) {
	inputs := []string{"EN PRÉPARATION", "Prêt pour impression", "Livré", "quelque chose"}
	for _, raw := range inputs {
		once := NormalizeStatus(raw)
		assert.Equal(t, once, NormalizeStatus(string(once)), "normalizing %q twice must be stable", raw)
	}
}

func TestNormalizeStatus_UnknownInputPassesThroughFolded(t *testing.T) {
	got := NormalizeStatus("Statut Inconnu")
	assert.Equal(t, DossierStatus("statut_inconnu"), got)
	assert.False(t, got.Known())
}

func TestDossierStatus_Known(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Known(), "%q", s)
	}
	assert.False(t, DossierStatus("archived").Known())
	assert.False(t, DossierStatus("").Known())
}

func TestDossierStatus_Label(t *testing.T) {
	assert.Equal(t, "En cours de préparation", StatusEnCours.Label())
	assert.Equal(t, "Prêt pour impression", StatusPretImpression.Label())
	assert.Equal(t, "Livré", StatusLivre.Label())
	assert.Equal(t, "À revoir", StatusARevoir.Label())
	// fallback keeps the raw value
	assert.Equal(t, "archived", DossierStatus("archived").Label())
}

func TestPhasePredicates(t *testing.T) {
	printPhase := map[DossierStatus]bool{
		StatusPretImpression: true,
		StatusEnImpression:   true,
		StatusPretLivraison:  true,
	}
	deliveryPhase := map[DossierStatus]bool{
		StatusPretLivraison: true,
		StatusEnLivraison:   true,
		StatusLivre:         true,
		StatusTermine:       true,
	}
	for _, s := range AllStatuses {
		assert.Equal(t, printPhase[s], s.InPrintPhase(), "print phase for %q", s)
		assert.Equal(t, deliveryPhase[s], s.InDeliveryPhase(), "delivery phase for %q", s)
	}
}
