// Package workflow owns the dossier state machine: which status transitions
// are legal for which role, the guards attached to them, and the
// notifications a successful transition produces. Everything here is pure
// decision logic over explicit inputs; persistence and dispatch stay with
// the callers.
package workflow

import (
	"fmt"
	"strings"

	"printflow/internal/domain"
)

// Decision is the structured outcome of a workflow check. Denials are
// expected, user-facing results, not errors.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(format string, args ...any) Decision {
	return Decision{Allowed: false, Reason: fmt.Sprintf(format, args...)}
}

type transitionTable map[domain.DossierStatus][]domain.DossierStatus

// preparateurTransitions: validate a prepared dossier into the print
// pipeline, or revalidate one sent back for revision. A preparer never sets
// a_revoir itself.
var preparateurTransitions = transitionTable{
	domain.StatusEnCours: {domain.StatusPretImpression},
	domain.StatusARevoir: {domain.StatusPretImpression},
}

// imprimeurTransitions applies to both operator roles; the machine guard in
// CanTransition decides which dossiers each may touch.
var imprimeurTransitions = transitionTable{
	domain.StatusPretImpression: {domain.StatusEnImpression, domain.StatusARevoir},
	domain.StatusEnImpression:   {domain.StatusPretLivraison, domain.StatusARevoir},
}

// livreurTransitions includes the direct-delivery shortcut
// pret_livraison -> livre.
var livreurTransitions = transitionTable{
	domain.StatusPretLivraison: {domain.StatusEnLivraison, domain.StatusLivre},
	domain.StatusEnLivraison:   {domain.StatusLivre},
	domain.StatusLivre:         {domain.StatusTermine},
}

// adminTransitions is the superset of every role's forward transitions plus
// each reverse step, so an admin can unwind any mistake including reopening
// a closed dossier.
var adminTransitions = transitionTable{
	domain.StatusEnCours:        {domain.StatusPretImpression, domain.StatusARevoir},
	domain.StatusPretImpression: {domain.StatusEnImpression, domain.StatusARevoir, domain.StatusEnCours},
	domain.StatusEnImpression:   {domain.StatusPretLivraison, domain.StatusARevoir, domain.StatusPretImpression},
	domain.StatusPretLivraison:  {domain.StatusEnLivraison, domain.StatusLivre, domain.StatusEnImpression},
	domain.StatusEnLivraison:    {domain.StatusLivre, domain.StatusPretLivraison},
	domain.StatusLivre:          {domain.StatusTermine, domain.StatusEnLivraison},
	domain.StatusTermine:        {domain.StatusLivre},
	domain.StatusARevoir:        {domain.StatusPretImpression, domain.StatusEnCours},
}

// transitionsFor returns the transition table for a role, or nil for roles
// with no status authority. The switch is exhaustive over the role enum.
func transitionsFor(role domain.UserRole) transitionTable {
	switch role {
	case domain.RoleAdmin:
		return adminTransitions
	case domain.RolePreparateur:
		return preparateurTransitions
	case domain.RoleImprimeurRoland, domain.RoleImprimeurXerox:
		return imprimeurTransitions
	case domain.RoleLivreur:
		return livreurTransitions
	default:
		return nil
	}
}

// CanTransition decides whether the user may move the dossier from its
// current persisted status to target. The current status always comes from
// the dossier record, never from the client.
func CanTransition(user domain.User, dossier domain.Dossier, target domain.DossierStatus) Decision {
	current := domain.NormalizeStatus(string(dossier.Status))
	target = domain.NormalizeStatus(string(target))

	table := transitionsFor(user.Role)
	if table == nil {
		return deny("role %q is not authorized to change dossier status", user.Role)
	}

	if !targetIn(table[current], target) {
		return deny("role %s cannot move a dossier from %s to %s",
			user.Role, current.Label(), target.Label())
	}

	// Guards run only after the table allowed the pair.
	switch user.Role {
	case domain.RolePreparateur:
		if dossier.OwnerID != user.ID {
			return deny("this dossier belongs to another preparer")
		}
	case domain.RoleImprimeurRoland, domain.RoleImprimeurXerox:
		if dossier.MachineType != user.Role.Machine() {
			return deny("dossier %s is assigned to the %s machine",
				dossier.OrderNumber, machineName(dossier.MachineType))
		}
	}

	return allow()
}

// ValidateTransition runs CanTransition and additionally enforces the
// comment requirement: entering a_revoir always needs a non-blank,
// human-readable comment explaining what to rework.
func ValidateTransition(user domain.User, dossier domain.Dossier, target domain.DossierStatus, comment string) Decision {
	decision := CanTransition(user, dossier, target)
	if !decision.Allowed {
		return decision
	}
	if domain.NormalizeStatus(string(target)) == domain.StatusARevoir && strings.TrimSpace(comment) == "" {
		return deny("a comment is required when sending a dossier back for revision")
	}
	return allow()
}

func targetIn(targets []domain.DossierStatus, target domain.DossierStatus) bool {
	for _, t := range targets {
		if t == target {
			return true
		}
	}
	return false
}

func machineName(machine domain.MachineType) string {
	if machine == domain.MachineNone {
		return "unassigned"
	}
	return string(machine)
}
