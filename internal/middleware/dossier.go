package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"printflow/internal/domain"
	"printflow/internal/service"
)

// ContextKeyDossier holds the resolved dossier for handlers downstream of
// DossierAccess.
const ContextKeyDossier = "dossier"

// DossierAccess resolves the :id route parameter within the caller's
// visibility scope and stores the dossier in the context. A scoped miss is
// re-checked without scoping so the response can tell "hidden from you"
// (403, with the rule that blocked access) apart from "does not exist"
// (404).
func DossierAccess(dossierService service.DossierService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := CurrentUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "authentication required"},
			})
			return
		}

		identifier := c.Param("id")
		dossier, err := dossierService.ResolveFor(c.Request.Context(), identifier, user)
		if err == nil {
			c.Set(ContextKeyDossier, *dossier)
			c.Next()
			return
		}
		if !errors.Is(err, domain.ErrDossierNotFound) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": "an internal error occurred"},
			})
			return
		}

		hidden, lookupErr := dossierService.Resolve(c.Request.Context(), identifier)
		if lookupErr != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_FOUND", "message": "dossier not found"},
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   gin.H{"code": "FORBIDDEN", "message": visibilityDenial(user, *hidden)},
		})
	}
}

// visibilityDenial names the scoping rule that hid the dossier from the
// caller. It mirrors access.DossierFilterForUser; action-level view rights
// can be broader but do not make a dossier resolvable.
func visibilityDenial(user domain.User, dossier domain.Dossier) string {
	switch user.Role {
	case domain.RolePreparateur:
		return "this dossier belongs to another preparer"
	case domain.RoleImprimeurRoland, domain.RoleImprimeurXerox:
		if dossier.MachineType != user.Role.Machine() {
			return fmt.Sprintf("dossier %s is assigned to another machine", dossier.OrderNumber)
		}
		return fmt.Sprintf("dossier %s is not in the print pipeline", dossier.OrderNumber)
	case domain.RoleLivreur:
		return fmt.Sprintf("dossier %s is not yet ready for delivery", dossier.OrderNumber)
	default:
		return fmt.Sprintf("role %q is not recognized", user.Role)
	}
}

// DossierFromContext returns the dossier stored by DossierAccess.
func DossierFromContext(c *gin.Context) (domain.Dossier, bool) {
	val, exists := c.Get(ContextKeyDossier)
	if !exists {
		return domain.Dossier{}, false
	}
	dossier, ok := val.(domain.Dossier)
	return dossier, ok
}
