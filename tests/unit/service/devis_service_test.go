package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"printflow/internal/domain"
	"printflow/internal/service"
	"printflow/mocks"
)

func newDevisService(devisRepo *mocks.MockDevisRepo, dossierRepo *mocks.MockDossierRepo) service.DevisService {
	activityRepo := new(mocks.MockActivityRepo)
	activityRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	return service.NewDevisService(devisRepo, dossierRepo, service.NewActivityService(activityRepo))
}

func pendingDevis(author uuid.UUID) *domain.Devis {
	return &domain.Devis{
		ID:          uuid.New(),
		DevisNumber: "DEV-2026-ABCD1234",
		ClientName:  "Imprimerie Dupont",
		Description: "Brochures 16 pages",
		MachineType: domain.MachineXerox,
		Amount:      480.0,
		Status:      domain.DevisPending,
		CreatedBy:   author,
	}
}

func TestDevisService_Create_Success(t *testing.T) {
	devisRepo := new(mocks.MockDevisRepo)
	svc := newDevisService(devisRepo, new(mocks.MockDossierRepo))
	user := preparer()

	devisRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Devis")).Return(nil)

	devis, err := svc.Create(context.Background(), user, service.CreateDevisInput{
		ClientName:  "Imprimerie Dupont",
		Description: "Brochures",
		MachineType: domain.MachineRoland,
		Amount:      250,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.DevisPending, devis.Status)
	assert.Equal(t, user.ID, devis.CreatedBy)
	assert.Regexp(t, `^DEV-\d{4}-[0-9A-F]{8}$`, devis.DevisNumber)
	devisRepo.AssertExpectations(t)
}

func TestDevisService_Create_RoleAndAmountChecks(t *testing.T) {
	svc := newDevisService(new(mocks.MockDevisRepo), new(mocks.MockDossierRepo))

	_, err := svc.Create(context.Background(), domain.User{ID: uuid.New(), Role: domain.RoleLivreur},
		service.CreateDevisInput{ClientName: "X", MachineType: domain.MachineRoland, Amount: 10})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Create(context.Background(), preparer(),
		service.CreateDevisInput{ClientName: "X", MachineType: domain.MachineRoland, Amount: 0})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), preparer(),
		service.CreateDevisInput{ClientName: "X", MachineType: "offset", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidMachineType)
}

func TestDevisService_Accept_SpawnsDossierOwnedByAuthor(t *testing.T) {
	devisRepo := new(mocks.MockDevisRepo)
	dossierRepo := new(mocks.MockDossierRepo)
	svc := newDevisService(devisRepo, dossierRepo)

	author := uuid.New()
	devis := pendingDevis(author)
	acceptor := admin()

	devisRepo.On("GetByID", mock.Anything, devis.ID).Return(devis, nil)

	var created *domain.Dossier
	dossierRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Dossier")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.Dossier) }).Return(nil)
	devisRepo.On("Decide", mock.Anything, devis.ID, domain.DevisAccepted, mock.AnythingOfType("*uuid.UUID")).Return(nil)

	dossier, err := svc.Accept(context.Background(), acceptor, devis.ID)

	assert.NoError(t, err)
	assert.Equal(t, author, dossier.OwnerID, "dossier belongs to the quote's author, not the acceptor")
	assert.Equal(t, devis.ClientName, dossier.ClientName)
	assert.Equal(t, devis.MachineType, dossier.MachineType)
	assert.Equal(t, domain.StatusEnCours, dossier.Status)
	assert.Equal(t, created.ID, dossier.ID)
	devisRepo.AssertExpectations(t)
	dossierRepo.AssertExpectations(t)
}

func TestDevisService_Accept_AlreadyDecided(t *testing.T) {
	devisRepo := new(mocks.MockDevisRepo)
	dossierRepo := new(mocks.MockDossierRepo)
	svc := newDevisService(devisRepo, dossierRepo)

	devis := pendingDevis(uuid.New())
	devis.Status = domain.DevisRejected

	devisRepo.On("GetByID", mock.Anything, devis.ID).Return(devis, nil)

	dossier, err := svc.Accept(context.Background(), admin(), devis.ID)

	assert.Nil(t, dossier)
	assert.ErrorIs(t, err, domain.ErrDevisAlreadyDecided)
	dossierRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDevisService_Accept_RoleCheck(t *testing.T) {
	devisRepo := new(mocks.MockDevisRepo)
	svc := newDevisService(devisRepo, new(mocks.MockDossierRepo))

	_, err := svc.Accept(context.Background(),
		domain.User{ID: uuid.New(), Role: domain.RoleImprimeurRoland}, uuid.New())

	assert.ErrorIs(t, err, domain.ErrForbidden)
	devisRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestDevisService_Reject(t *testing.T) {
	devisRepo := new(mocks.MockDevisRepo)
	svc := newDevisService(devisRepo, new(mocks.MockDossierRepo))
	devisID := uuid.New()

	devisRepo.On("Decide", mock.Anything, devisID, domain.DevisRejected, (*uuid.UUID)(nil)).Return(nil)

	assert.NoError(t, svc.Reject(context.Background(), preparer(), devisID))
	devisRepo.AssertExpectations(t)

	err := svc.Reject(context.Background(), domain.User{ID: uuid.New(), Role: domain.RoleLivreur}, devisID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDevisService_Reject_AlreadyDecidedSurfacesConflict(t *testing.T) {
	devisRepo := new(mocks.MockDevisRepo)
	svc := newDevisService(devisRepo, new(mocks.MockDossierRepo))
	devisID := uuid.New()

	devisRepo.On("Decide", mock.Anything, devisID, domain.DevisRejected, (*uuid.UUID)(nil)).
		Return(domain.ErrDevisAlreadyDecided)

	err := svc.Reject(context.Background(), admin(), devisID)
	assert.ErrorIs(t, err, domain.ErrDevisAlreadyDecided)
}
