package workflow

import "printflow/internal/domain"

// CanViewDossier is the visibility predicate backing both single-dossier
// reads and list filtering. It must stay row-by-row equivalent to
// access.DossierFilterForUser; the access package tests enforce that.
func CanViewDossier(user domain.User, dossier domain.Dossier) bool {
	status := domain.NormalizeStatus(string(dossier.Status))

	switch user.Role {
	case domain.RoleAdmin:
		return true
	case domain.RolePreparateur:
		return dossier.OwnerID == user.ID
	case domain.RoleImprimeurRoland, domain.RoleImprimeurXerox:
		return dossier.MachineType == user.Role.Machine() && status.InPrintPhase()
	case domain.RoleLivreur:
		return status.InDeliveryPhase()
	default:
		return false
	}
}

// CanDeleteDossier is the single authority for dossier deletion. Admins may
// always delete. A preparer may delete an owned dossier only while it has
// not been validated into the print pipeline: once a dossier reaches
// pret_impression it is immutable-by-deletion for everyone except admin.
func CanDeleteDossier(user domain.User, dossier domain.Dossier) Decision {
	status := domain.NormalizeStatus(string(dossier.Status))

	switch user.Role {
	case domain.RoleAdmin:
		return allow()
	case domain.RolePreparateur:
		if dossier.OwnerID != user.ID {
			return deny("this dossier belongs to another preparer")
		}
		if status != domain.StatusEnCours && status != domain.StatusARevoir {
			return deny("dossier %s has entered the print pipeline and can no longer be deleted",
				dossier.OrderNumber)
		}
		return allow()
	case domain.RoleImprimeurRoland, domain.RoleImprimeurXerox, domain.RoleLivreur:
		return deny("role %q may not delete dossiers", user.Role)
	default:
		return deny("role %q is not recognized", user.Role)
	}
}
