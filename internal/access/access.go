// Package access is the per-role, per-dossier authorization engine for
// everything that is not a status transition. It is composed with, but
// independent from, the workflow package: an action can be permitted here
// while the specific transition it leads to is still refused there.
package access

import (
	"fmt"

	"printflow/internal/domain"
)

// AccessDecision is the structured outcome of an access check. The message
// is part of the contract: the dossier middleware uses it to distinguish a
// 403 from a 404.
type AccessDecision struct {
	Allowed bool   `json:"allowed"`
	Message string `json:"message,omitempty"`
}

func granted() AccessDecision {
	return AccessDecision{Allowed: true}
}

func refused(format string, args ...any) AccessDecision {
	return AccessDecision{Allowed: false, Message: fmt.Sprintf(format, args...)}
}

// actionRoles is the static capability table consulted by
// HasActionPermission. Scoped per-dossier rules live in CanAccessDossier;
// this table only answers "may this role ever perform this action".
var actionRoles = map[domain.Action]map[domain.UserRole]bool{
	domain.ActionView: {
		domain.RoleAdmin: true, domain.RolePreparateur: true,
		domain.RoleImprimeurRoland: true, domain.RoleImprimeurXerox: true,
		domain.RoleLivreur: true,
	},
	domain.ActionCreate: {
		domain.RoleAdmin: true, domain.RolePreparateur: true,
	},
	domain.ActionUpdate: {
		domain.RoleAdmin: true, domain.RolePreparateur: true,
	},
	domain.ActionDelete: {
		domain.RoleAdmin: true,
	},
	domain.ActionValidate: {
		domain.RoleAdmin: true, domain.RolePreparateur: true,
	},
	domain.ActionUploadFile: {
		domain.RoleAdmin: true, domain.RolePreparateur: true,
		domain.RoleImprimeurRoland: true, domain.RoleImprimeurXerox: true,
	},
	domain.ActionDeleteFile: {
		domain.RoleAdmin: true, domain.RolePreparateur: true,
	},
	domain.ActionChangeStatus: {
		domain.RoleAdmin: true, domain.RolePreparateur: true,
		domain.RoleImprimeurRoland: true, domain.RoleImprimeurXerox: true,
		domain.RoleLivreur: true,
	},
	domain.ActionAssign: {
		domain.RoleAdmin: true,
	},
	domain.ActionDownload: {
		domain.RoleAdmin: true, domain.RolePreparateur: true,
		domain.RoleImprimeurRoland: true, domain.RoleImprimeurXerox: true,
		domain.RoleLivreur: true,
	},
	domain.ActionAccessFiles: {
		domain.RoleAdmin: true, domain.RolePreparateur: true,
		domain.RoleImprimeurRoland: true, domain.RoleImprimeurXerox: true,
		domain.RoleLivreur: true,
	},
}

// HasActionPermission is the coarse role-level lookup: whether the role may
// ever perform the action, regardless of any specific dossier. Note that
// dossier deletion is gated by workflow.CanDeleteDossier, which additionally
// lets a preparer delete an owned pre-validation dossier; this table's
// admin-only delete entry only covers generic action gating.
func HasActionPermission(role domain.UserRole, action domain.Action) bool {
	return actionRoles[action][role]
}

// preparerOwnedActions is the full action set a preparer has on owned
// dossiers. Deletion is decided by the workflow engine's status-aware rule.
var preparerOwnedActions = map[domain.Action]bool{
	domain.ActionView: true, domain.ActionUpdate: true, domain.ActionValidate: true,
	domain.ActionChangeStatus: true, domain.ActionUploadFile: true,
	domain.ActionDeleteFile: true, domain.ActionDownload: true,
	domain.ActionAccessFiles: true,
}

// imprimeurMatchedActions is the action set an operator has on dossiers of
// their own machine.
var imprimeurMatchedActions = map[domain.Action]bool{
	domain.ActionView: true, domain.ActionChangeStatus: true,
	domain.ActionUploadFile: true, domain.ActionDownload: true,
	domain.ActionAccessFiles: true,
}

// livreurDeliveryActions is the action set a deliverer has once a dossier
// reaches the delivery phase.
var livreurDeliveryActions = map[domain.Action]bool{
	domain.ActionView: true, domain.ActionChangeStatus: true,
	domain.ActionDownload: true, domain.ActionAccessFiles: true,
}

// CanAccessDossier applies the scoped per-role rules to one dossier. Every
// refusal carries a reason telling the user which rule blocked them: wrong
// owner, wrong machine, not ready yet, or unknown role.
func CanAccessDossier(user domain.User, dossier domain.Dossier, action domain.Action) AccessDecision {
	switch user.Role {
	case domain.RoleAdmin:
		return granted()

	case domain.RolePreparateur:
		if dossier.OwnerID == user.ID {
			if preparerOwnedActions[action] {
				return granted()
			}
			return refused("action %q is not available to preparers", action)
		}
		// Coordination access on other preparers' dossiers: read and
		// contribute files, nothing else.
		if action == domain.ActionView || action == domain.ActionUploadFile {
			return granted()
		}
		return refused("this dossier belongs to another preparer")

	case domain.RoleImprimeurRoland, domain.RoleImprimeurXerox:
		if dossier.MachineType == user.Role.Machine() {
			if imprimeurMatchedActions[action] {
				return granted()
			}
			return refused("action %q is not available to printer operators", action)
		}
		if action == domain.ActionView {
			return granted()
		}
		// Deliberate security boundary: operators must not reach files
		// belonging to the other machine's jobs.
		return refused("dossier %s is assigned to the %s machine",
			dossier.OrderNumber, otherMachineName(dossier.MachineType))

	case domain.RoleLivreur:
		if domain.NormalizeStatus(string(dossier.Status)).InDeliveryPhase() {
			if livreurDeliveryActions[action] {
				return granted()
			}
			return refused("action %q is not available to deliverers", action)
		}
		if action == domain.ActionView {
			return granted()
		}
		return refused("dossier %s is not yet ready for delivery", dossier.OrderNumber)

	default:
		return refused("role %q is not recognized", user.Role)
	}
}

func otherMachineName(machine domain.MachineType) string {
	if machine == domain.MachineNone {
		return "unassigned"
	}
	return string(machine)
}
