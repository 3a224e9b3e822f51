package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDossierFromRecord_CanonicalKeys(t *testing.T) {
	owner := uuid.New()
	d, err := DossierFromRecord(map[string]any{
		"order_number": "CMD-2020-0042",
		"client_name":  "Imprimerie Dupont",
		"description":  "Flyers A5",
		"status":       "Prêt pour impression",
		"machine_type": "roland",
		"owner_id":     owner.String(),
		"legacy_id":    float64(42),
	})
	require.NoError(t, err)
	assert.Equal(t, "CMD-2020-0042", d.OrderNumber)
	assert.Equal(t, "Imprimerie Dupont", d.ClientName)
	assert.Equal(t, "Flyers A5", d.Description)
	assert.Equal(t, StatusPretImpression, d.Status)
	assert.Equal(t, MachineRoland, d.MachineType)
	assert.Equal(t, owner, d.OwnerID)
	require.NotNil(t, d.LegacyID)
	assert.Equal(t, int64(42), *d.LegacyID)
}

func TestDossierFromRecord_LegacyAliases(t *testing.T) {
	owner := uuid.New()
	d, err := DossierFromRecord(map[string]any{
		"numero":          "CMD-2019-0007",
		"nom_client":      "Atelier Breton",
		"libelle":         "Cartes de visite",
		"statut":          "EN PRÉPARATION",
		"type_formulaire": "xerox",
		"preparateur_id":  owner.String(),
		"id":              int64(1207),
	})
	require.NoError(t, err)
	assert.Equal(t, "CMD-2019-0007", d.OrderNumber)
	assert.Equal(t, "Atelier Breton", d.ClientName)
	assert.Equal(t, "Cartes de visite", d.Description)
	assert.Equal(t, StatusEnCours, d.Status)
	assert.Equal(t, MachineXerox, d.MachineType)
	assert.Equal(t, owner, d.OwnerID)
	require.NotNil(t, d.LegacyID)
	assert.Equal(t, int64(1207), *d.LegacyID)
}

func TestDossierFromRecord_AliasPrecedence(t *testing.T) {
	d, err := DossierFromRecord(map[string]any{
		"status": "en_cours",
		"statut": "livre",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusEnCours, d.Status, "first alias in resolution order wins")
}

func TestDossierFromRecord_DefaultsStatusWhenAbsent(t *testing.T) {
	d, err := DossierFromRecord(map[string]any{"client_name": "Sans statut"})
	require.NoError(t, err)
	assert.Equal(t, StatusEnCours, d.Status)
}

func TestDossierFromRecord_InvalidMachine(t *testing.T) {
	_, err := DossierFromRecord(map[string]any{"machine_type": "heidelberg"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMachineType)
}

func TestDossierFromRecord_NumericOwnerKeepsNilUUID(t *testing.T) {
	d, err := DossierFromRecord(map[string]any{
		"owner_id":  float64(318),
		"legacy_id": "318",
	})
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, d.OwnerID)
	require.NotNil(t, d.LegacyID)
	assert.Equal(t, int64(318), *d.LegacyID)
}

func TestDossierFromRecord_IgnoresEmptyAndNilValues(t *testing.T) {
	d, err := DossierFromRecord(map[string]any{
		"status":      nil,
		"statut":      "",
		"state":       "a_corriger",
		"client_name": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusARevoir, d.Status)
	assert.Empty(t, d.ClientName)
}
