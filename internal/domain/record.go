package domain

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Field-name aliases seen in exports from the previous system. Resolution
// happens here, at the boundary; everything past this point sees only the
// canonical Dossier fields.
var (
	statusAliases  = []string{"status", "statut", "state"}
	machineAliases = []string{"machine_type", "machineType", "machine", "type_formulaire"}
	ownerAliases   = []string{"owner_id", "ownerId", "preparateur_id", "created_by"}
)

// DossierFromRecord converts a loosely-typed legacy dossier record into a
// canonical Dossier. Status is normalized, the machine field is validated,
// and the owner id accepts either a UUID string or a legacy numeric id
// (numeric owners resolve to uuid.Nil and keep the raw value in LegacyID).
func DossierFromRecord(record map[string]any) (*Dossier, error) {
	d := &Dossier{}

	if raw, ok := firstString(record, statusAliases); ok {
		d.Status = NormalizeStatus(raw)
	} else {
		d.Status = StatusEnCours
	}

	if raw, ok := firstString(record, machineAliases); ok {
		machine, valid := ParseMachineType(raw)
		if !valid {
			return nil, fmt.Errorf("record machine %q: %w", raw, ErrInvalidMachineType)
		}
		d.MachineType = machine
	}

	if raw, ok := firstString(record, ownerAliases); ok {
		if ownerID, err := uuid.Parse(raw); err == nil {
			d.OwnerID = ownerID
		}
	}

	if raw, ok := firstString(record, []string{"order_number", "numero", "numero_commande"}); ok {
		d.OrderNumber = raw
	}
	if raw, ok := firstString(record, []string{"client_name", "client", "nom_client"}); ok {
		d.ClientName = raw
	}
	if raw, ok := firstString(record, []string{"description", "libelle"}); ok {
		d.Description = raw
	}
	if raw, ok := firstString(record, []string{"legacy_id", "id"}); ok {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			d.LegacyID = &n
		}
	}

	return d, nil
}

// firstString returns the first present alias coerced to a string.
// Numbers are rendered without a decimal point when integral, matching how
// the legacy exporter serialized ids.
func firstString(record map[string]any, aliases []string) (string, bool) {
	for _, alias := range aliases {
		val, ok := record[alias]
		if !ok || val == nil {
			continue
		}
		switch v := val.(type) {
		case string:
			if v != "" {
				return v, true
			}
		case float64:
			if v == float64(int64(v)) {
				return strconv.FormatInt(int64(v), 10), true
			}
			return strconv.FormatFloat(v, 'f', -1, 64), true
		case int:
			return strconv.Itoa(v), true
		case int64:
			return strconv.FormatInt(v, 10), true
		}
	}
	return "", false
}
