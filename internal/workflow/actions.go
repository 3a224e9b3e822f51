package workflow

import (
	"fmt"

	"printflow/internal/domain"
)

// ActionOption is the presentation metadata for one legal transition,
// consumed as-is by the frontend action menu.
type ActionOption struct {
	Status domain.DossierStatus `json:"status"`
	Label  string               `json:"label"`
	Icon   string               `json:"icon"`
	Type   string               `json:"type"`
}

type statusPair struct {
	from, to domain.DossierStatus
}

type actionMeta struct {
	label string
	icon  string
	typ   string
}

// actionLabels attaches UI metadata per (from, to) pair. Pairs missing here
// fall back to a generic label; the table carries no business logic.
var actionLabels = map[statusPair]actionMeta{
	{domain.StatusEnCours, domain.StatusPretImpression}:        {"Valider pour impression", "check", "primary"},
	{domain.StatusEnCours, domain.StatusARevoir}:               {"Demander une révision", "alert", "warning"},
	{domain.StatusPretImpression, domain.StatusEnImpression}:   {"Démarrer l'impression", "printer", "primary"},
	{domain.StatusPretImpression, domain.StatusARevoir}:        {"Renvoyer en révision", "alert", "warning"},
	{domain.StatusPretImpression, domain.StatusEnCours}:        {"Revenir en préparation", "undo", "default"},
	{domain.StatusEnImpression, domain.StatusPretLivraison}:    {"Marquer prêt à livrer", "package", "success"},
	{domain.StatusEnImpression, domain.StatusARevoir}:          {"Renvoyer en révision", "alert", "warning"},
	{domain.StatusEnImpression, domain.StatusPretImpression}:   {"Revenir à prêt impression", "undo", "default"},
	{domain.StatusPretLivraison, domain.StatusEnLivraison}:     {"Démarrer la livraison", "truck", "primary"},
	{domain.StatusPretLivraison, domain.StatusLivre}:           {"Livraison directe", "truck", "success"},
	{domain.StatusPretLivraison, domain.StatusEnImpression}:    {"Revenir en impression", "undo", "default"},
	{domain.StatusEnLivraison, domain.StatusLivre}:             {"Marquer livré", "check", "success"},
	{domain.StatusEnLivraison, domain.StatusPretLivraison}:     {"Revenir à prêt livraison", "undo", "default"},
	{domain.StatusLivre, domain.StatusTermine}:                 {"Clôturer le dossier", "archive", "success"},
	{domain.StatusLivre, domain.StatusEnLivraison}:             {"Revenir en livraison", "undo", "default"},
	{domain.StatusTermine, domain.StatusLivre}:                 {"Rouvrir le dossier", "undo", "danger"},
	{domain.StatusARevoir, domain.StatusPretImpression}:        {"Revalider pour impression", "check", "primary"},
	{domain.StatusARevoir, domain.StatusEnCours}:               {"Revenir en préparation", "undo", "default"},
}

// AvailableActions enumerates the transitions the user may currently apply
// to the dossier. Every candidate is re-checked through CanTransition so
// ownership and machine guards hold per entry, and the result is exactly
// the set of targets CanTransition would allow.
func AvailableActions(user domain.User, dossier domain.Dossier) []ActionOption {
	current := domain.NormalizeStatus(string(dossier.Status))
	table := transitionsFor(user.Role)
	if table == nil {
		return nil
	}

	var options []ActionOption
	for _, target := range table[current] {
		if !CanTransition(user, dossier, target).Allowed {
			continue
		}
		meta, ok := actionLabels[statusPair{current, target}]
		if !ok {
			meta = actionMeta{
				label: fmt.Sprintf("Passer à %s", target.Label()),
				icon:  "arrow-right",
				typ:   "default",
			}
		}
		options = append(options, ActionOption{
			Status: target,
			Label:  meta.label,
			Icon:   meta.icon,
			Type:   meta.typ,
		})
	}
	return options
}
