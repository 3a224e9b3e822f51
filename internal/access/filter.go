package access

import "printflow/internal/domain"

// Filter is a SQL predicate fragment scoping dossier list queries to what
// the user may view. Where uses `?` placeholders; the repository rebinds to
// the driver's positional style before executing. An empty Where means no
// filtering (admin).
type Filter struct {
	Where string
	Args  []any
}

// Unfiltered reports whether the filter matches every row.
func (f Filter) Unfiltered() bool {
	return f.Where == ""
}

// DossierFilterForUser derives the list-query predicate for a user. It must
// stay exactly equivalent to workflow.CanViewDossier applied row-by-row;
// any drift between the two is a security bug, and the tests compare them
// over the full role/status/machine/ownership grid.
func DossierFilterForUser(user domain.User) Filter {
	switch user.Role {
	case domain.RoleAdmin:
		return Filter{}

	case domain.RolePreparateur:
		return Filter{
			Where: "owner_id = ?",
			Args:  []any{user.ID},
		}

	case domain.RoleImprimeurRoland, domain.RoleImprimeurXerox:
		return Filter{
			Where: "machine_type = ? AND status IN (?, ?, ?)",
			Args: []any{
				user.Role.Machine(),
				domain.StatusPretImpression,
				domain.StatusEnImpression,
				domain.StatusPretLivraison,
			},
		}

	case domain.RoleLivreur:
		return Filter{
			Where: "status IN (?, ?, ?, ?)",
			Args: []any{
				domain.StatusPretLivraison,
				domain.StatusEnLivraison,
				domain.StatusLivre,
				domain.StatusTermine,
			},
		}

	default:
		// Unknown roles see nothing.
		return Filter{Where: "1 = 0"}
	}
}
