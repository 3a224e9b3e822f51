package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DossierStatus is the canonical production status of a dossier.
// Canonical values are lowercase with underscores; NormalizeStatus maps
// every legacy spelling stored upstream onto this set.
type DossierStatus string

const (
	StatusEnCours        DossierStatus = "en_cours"
	StatusPretImpression DossierStatus = "pret_impression"
	StatusEnImpression   DossierStatus = "en_impression"
	StatusPretLivraison  DossierStatus = "pret_livraison"
	StatusEnLivraison    DossierStatus = "en_livraison"
	StatusLivre          DossierStatus = "livre"
	StatusTermine        DossierStatus = "termine"
	StatusARevoir        DossierStatus = "a_revoir"
)

// AllStatuses lists the canonical statuses in happy-path order, with the
// revision side state last.
var AllStatuses = []DossierStatus{
	StatusEnCours,
	StatusPretImpression,
	StatusEnImpression,
	StatusPretLivraison,
	StatusEnLivraison,
	StatusLivre,
	StatusTermine,
	StatusARevoir,
}

// statusLabels holds the human-readable French labels shown in the UI.
var statusLabels = map[DossierStatus]string{
	StatusEnCours:        "En cours de préparation",
	StatusPretImpression: "Prêt pour impression",
	StatusEnImpression:   "En impression",
	StatusPretLivraison:  "Prêt pour livraison",
	StatusEnLivraison:    "En livraison",
	StatusLivre:          "Livré",
	StatusTermine:        "Terminé",
	StatusARevoir:        "À revoir",
}

// legacyStatuses maps older DB spellings (already folded) that do not reduce
// to a canonical value by accent/case/space folding alone.
var legacyStatuses = map[string]DossierStatus{
	"en_preparation":      StatusEnCours,
	"preparation":         StatusEnCours,
	"pret_pour_impression": StatusPretImpression,
	"impression_en_cours":  StatusEnImpression,
	"pret_pour_livraison":  StatusPretLivraison,
	"livraison_en_cours":   StatusEnLivraison,
	"livree":               StatusLivre,
	"terminee":             StatusTermine,
	"a_corriger":           StatusARevoir,
}

// foldAccents strips combining marks so "Prêt" folds to "Pret".
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeStatus maps an arbitrary status spelling to its canonical form.
// It is total and idempotent: unrecognized input is lowercased with
// whitespace collapsed to underscores and returned as-is, which matches no
// transition table row, so callers degrade to a denial rather than an error.
func NormalizeStatus(raw string) DossierStatus {
	folded, _, err := transform.String(foldAccents, raw)
	if err != nil {
		folded = raw
	}
	folded = strings.ToLower(folded)
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-'
	})
	key := strings.Join(fields, "_")

	if legacy, ok := legacyStatuses[key]; ok {
		return legacy
	}
	return DossierStatus(key)
}

// Known reports whether the status is a member of the canonical enum.
func (s DossierStatus) Known() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label, falling back to the raw value for
// unrecognized statuses.
func (s DossierStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// DeliveryPhaseStatuses are the statuses a deliverer works with.
var DeliveryPhaseStatuses = []DossierStatus{
	StatusPretLivraison,
	StatusEnLivraison,
	StatusLivre,
	StatusTermine,
}

// PrintPhaseStatuses are the statuses visible to printer operators.
var PrintPhaseStatuses = []DossierStatus{
	StatusPretImpression,
	StatusEnImpression,
	StatusPretLivraison,
}

// InDeliveryPhase reports whether the status is in the delivery-phase set.
func (s DossierStatus) InDeliveryPhase() bool {
	return statusIn(s, DeliveryPhaseStatuses)
}

// InPrintPhase reports whether the status is in the printer-visible set.
func (s DossierStatus) InPrintPhase() bool {
	return statusIn(s, PrintPhaseStatuses)
}

func statusIn(s DossierStatus, set []DossierStatus) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}
