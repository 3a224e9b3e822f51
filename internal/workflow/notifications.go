package workflow

import (
	"fmt"

	"github.com/google/uuid"

	"printflow/internal/domain"
)

// NotificationsFor maps a completed status change to the notifications it
// produces. Pure data construction: delivery, retries, and transport belong
// to the dispatch sink, and re-delivery is harmless because the payload has
// no side effects. Statuses with no defined notification return nil.
func NotificationsFor(dossier domain.Dossier, oldStatus, newStatus domain.DossierStatus, changedBy domain.User) []domain.Notification {
	newStatus = domain.NormalizeStatus(string(newStatus))

	build := func(ntype, message string, roles []domain.UserRole, userIDs ...uuid.UUID) domain.Notification {
		return domain.Notification{
			TargetRoles:   roles,
			TargetUserIDs: userIDs,
			Type:          ntype,
			Message:       message,
			DossierID:     dossier.ID,
			OrderNumber:   dossier.OrderNumber,
			ChangedBy:     changedBy.ID,
		}
	}

	switch newStatus {
	case domain.StatusPretImpression:
		operator := domain.RoleImprimeurRoland
		if dossier.MachineType == domain.MachineXerox {
			operator = domain.RoleImprimeurXerox
		}
		return []domain.Notification{
			build("dossier_ready_to_print",
				fmt.Sprintf("Le dossier %s est prêt pour impression", dossier.OrderNumber),
				[]domain.UserRole{operator, domain.RoleAdmin}),
		}
	case domain.StatusEnImpression:
		return []domain.Notification{
			build("dossier_printing",
				fmt.Sprintf("Le dossier %s est en impression", dossier.OrderNumber),
				[]domain.UserRole{domain.RoleAdmin}, dossier.OwnerID),
		}
	case domain.StatusARevoir:
		return []domain.Notification{
			build("dossier_needs_revision",
				fmt.Sprintf("Le dossier %s doit être revu", dossier.OrderNumber),
				[]domain.UserRole{domain.RoleAdmin}, dossier.OwnerID),
		}
	case domain.StatusPretLivraison:
		return []domain.Notification{
			build("dossier_ready_to_deliver",
				fmt.Sprintf("Le dossier %s est prêt pour livraison", dossier.OrderNumber),
				[]domain.UserRole{domain.RoleLivreur, domain.RoleAdmin}),
		}
	case domain.StatusEnLivraison:
		return []domain.Notification{
			build("dossier_out_for_delivery",
				fmt.Sprintf("Le dossier %s est en cours de livraison", dossier.OrderNumber),
				nil, dossier.OwnerID),
		}
	case domain.StatusLivre:
		return []domain.Notification{
			build("dossier_delivered",
				fmt.Sprintf("Le dossier %s a été livré", dossier.OrderNumber),
				[]domain.UserRole{domain.RoleAdmin}, dossier.OwnerID),
		}
	default:
		return nil
	}
}
