package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"clubefast/config"
	"clubefast/internal/domain/repository"
	mockRepo "clubefast/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(adminEmails ...string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:  4,
			AdminEmails: adminEmails,
		},
	}
}

// txFixtures holds the repositories handed out inside a mocked transaction.
type txFixtures struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	customerRepo   *mockRepo.MockCustomerRepository
	prizeRepo      *mockRepo.MockPrizeRepository
	redemptionRepo *mockRepo.MockRedemptionRepository
	orderRepo      *mockRepo.MockOrderRepository
	historyRepo    *mockRepo.MockPointsHistoryRepository
}

func newTxFixtures(t *testing.T) *txFixtures {
	f := &txFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		customerRepo:   mockRepo.NewMockCustomerRepository(t),
		prizeRepo:      mockRepo.NewMockPrizeRepository(t),
		redemptionRepo: mockRepo.NewMockRedemptionRepository(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		historyRepo:    mockRepo.NewMockPointsHistoryRepository(t),
	}

	f.factory.EXPECT().CustomerRepo().Return(f.customerRepo).Maybe()
	f.factory.EXPECT().PrizeRepo().Return(f.prizeRepo).Maybe()
	f.factory.EXPECT().RedemptionRepo().Return(f.redemptionRepo).Maybe()
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo).Maybe()
	f.factory.EXPECT().HistoryRepo().Return(f.historyRepo).Maybe()

	return f
}

// expectTransaction runs the transaction body against the fixture repositories and returns its error.
func (f *txFixtures) expectTransaction(ctx context.Context) *mockRepo.MockTransactionManager_Execute_Call {
	return f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
