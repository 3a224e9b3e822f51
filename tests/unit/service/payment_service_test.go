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

func newPaymentService(repo *mocks.MockPaymentRepo) service.PaymentService {
	activityRepo := new(mocks.MockActivityRepo)
	activityRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	return service.NewPaymentService(repo, service.NewActivityService(activityRepo))
}

func TestPaymentService_Record_Success(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	svc := newPaymentService(repo)
	user := admin()
	dossier := ownedDossier(preparer(), domain.StatusLivre)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	payment, err := svc.Record(context.Background(), user, dossier, service.RecordPaymentInput{
		Amount: 150.50,
		Method: domain.PaymentCard,
		Note:   "acompte",
	})

	assert.NoError(t, err)
	assert.Equal(t, dossier.ID, payment.DossierID)
	assert.Equal(t, user.ID, payment.RecordedBy)
	assert.Equal(t, 150.50, payment.Amount)
	repo.AssertExpectations(t)
}

func TestPaymentService_Record_Validation(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	svc := newPaymentService(repo)
	dossier := ownedDossier(preparer(), domain.StatusLivre)

	_, err := svc.Record(context.Background(),
		domain.User{ID: uuid.New(), Role: domain.RoleLivreur}, dossier,
		service.RecordPaymentInput{Amount: 10, Method: domain.PaymentCash})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Record(context.Background(), admin(), dossier,
		service.RecordPaymentInput{Amount: -5, Method: domain.PaymentCash})
	assert.Error(t, err)

	_, err = svc.Record(context.Background(), admin(), dossier,
		service.RecordPaymentInput{Amount: 10, Method: "bitcoin"})
	assert.Error(t, err)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentService_ListByDossier(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	svc := newPaymentService(repo)
	user := preparer()
	dossier := ownedDossier(user, domain.StatusLivre)

	payments := []domain.Payment{
		{ID: uuid.New(), DossierID: dossier.ID, Amount: 100, Method: domain.PaymentCash},
		{ID: uuid.New(), DossierID: dossier.ID, Amount: 50.25, Method: domain.PaymentCheque},
	}
	repo.On("ListByDossier", mock.Anything, dossier.ID).Return(payments, nil)
	repo.On("TotalPaid", mock.Anything, dossier.ID).Return(150.25, nil)

	got, total, err := svc.ListByDossier(context.Background(), user, dossier)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 150.25, total)
}

func TestPaymentService_ListByDossier_DeniedForOperators(t *testing.T) {
	repo := new(mocks.MockPaymentRepo)
	svc := newPaymentService(repo)
	dossier := ownedDossier(preparer(), domain.StatusEnImpression)

	_, _, err := svc.ListByDossier(context.Background(),
		domain.User{ID: uuid.New(), Role: domain.RoleImprimeurRoland}, dossier)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "ListByDossier", mock.Anything, mock.Anything)
}
