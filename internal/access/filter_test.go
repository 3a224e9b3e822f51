package access

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"printflow/internal/domain"
	"printflow/internal/workflow"
)

// matchesFilter evaluates a Filter against one row in memory, the way the
// database would.
func matchesFilter(f Filter, d domain.Dossier) bool {
	switch {
	case f.Where == "":
		return true
	case f.Where == "1 = 0":
		return false
	case f.Where == "owner_id = ?":
		return d.OwnerID == f.Args[0].(uuid.UUID)
	case strings.HasPrefix(f.Where, "machine_type = ?"):
		if d.MachineType != f.Args[0].(domain.MachineType) {
			return false
		}
		return statusIn(d.Status, f.Args[1:])
	case strings.HasPrefix(f.Where, "status IN"):
		return statusIn(d.Status, f.Args)
	default:
		panic("unrecognized filter shape: " + f.Where)
	}
}

func statusIn(status domain.DossierStatus, args []any) bool {
	for _, a := range args {
		if status == a.(domain.DossierStatus) {
			return true
		}
	}
	return false
}

func TestDossierFilterForUser_Shapes(t *testing.T) {
	adm := DossierFilterForUser(domain.User{Role: domain.RoleAdmin})
	assert.True(t, adm.Unfiltered())

	prep := domain.User{ID: uuid.New(), Role: domain.RolePreparateur}
	pf := DossierFilterForUser(prep)
	assert.Equal(t, "owner_id = ?", pf.Where)
	assert.Equal(t, []any{prep.ID}, pf.Args)

	rf := DossierFilterForUser(domain.User{Role: domain.RoleImprimeurRoland})
	assert.Contains(t, rf.Where, "machine_type = ?")
	assert.Equal(t, domain.MachineRoland, rf.Args[0])

	uf := DossierFilterForUser(domain.User{Role: "stagiaire"})
	assert.Equal(t, "1 = 0", uf.Where)
	assert.Empty(t, uf.Args)
}

// Security invariant: the SQL predicate and the in-process visibility
// predicate must agree on every (user, dossier) pair.
func TestDossierFilter_EquivalentToCanViewDossier(t *testing.T) {
	ownerID := uuid.New()
	users := []domain.User{
		{ID: uuid.New(), Role: domain.RoleAdmin},
		{ID: ownerID, Role: domain.RolePreparateur},
		{ID: uuid.New(), Role: domain.RolePreparateur},
		{ID: uuid.New(), Role: domain.RoleImprimeurRoland},
		{ID: uuid.New(), Role: domain.RoleImprimeurXerox},
		{ID: uuid.New(), Role: domain.RoleLivreur},
		{ID: uuid.New(), Role: "stagiaire"},
	}
	statuses := []domain.DossierStatus{
		domain.StatusEnCours, domain.StatusPretImpression, domain.StatusEnImpression,
		domain.StatusPretLivraison, domain.StatusEnLivraison, domain.StatusLivre,
		domain.StatusTermine, domain.StatusARevoir,
	}
	owners := []uuid.UUID{ownerID, uuid.New()}

	for _, user := range users {
		filter := DossierFilterForUser(user)
		for _, machine := range []domain.MachineType{domain.MachineRoland, domain.MachineXerox} {
			for _, status := range statuses {
				for _, owner := range owners {
					d := domain.Dossier{
						ID:          uuid.New(),
						Status:      status,
						MachineType: machine,
						OwnerID:     owner,
					}
					assert.Equal(t,
						workflow.CanViewDossier(user, d),
						matchesFilter(filter, d),
						"role=%s machine=%s status=%s owned=%v",
						user.Role, machine, status, owner == user.ID)
				}
			}
		}
	}
}
