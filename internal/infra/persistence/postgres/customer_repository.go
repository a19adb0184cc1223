package postgres

import (
	"context"
	"strings"
	"time"

	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	"clubefast/internal/domain/repository"
	"clubefast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByIDForUpdate issues SELECT ... FOR UPDATE. It only locks inside a transaction.
func (repo *customerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id))
}

func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("lower(email) = lower(?)", email))
}

func (repo *customerRepository) findOne(tx *gorm.DB) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := tx.First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return toCustomerDomain(&customerM), nil
}

func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCustomer
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCustomerCreationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// UpdateBalance writes only the balance counters, guarded by the version the caller read.
func (repo *customerRepository) UpdateBalance(ctx context.Context, customer *entity.Customer) error {
	now := time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND version = ?", customer.ID, customer.Version).
		Updates(map[string]any{
			"saldo_pontos":        customer.Balance,
			"total_pontos_ganhos": customer.TotalEarned,
			"total_pontos_gastos": customer.TotalSpent,
			"version":             gorm.Expr("version + 1"),
			"updated_at":          now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrNegativeBalance
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer balance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConcurrentUpdate
	}

	customer.Version++
	customer.UpdatedAt = now

	return nil
}

func (repo *customerRepository) List(ctx context.Context, filter repository.CustomerFilter) ([]*entity.Customer, int64, error) {
	search := func(tx *gorm.DB) *gorm.DB {
		term := strings.TrimSpace(filter.Search)
		if term == "" {
			return tx
		}
		pattern := "%" + escapeLike(term) + "%"

		return tx.Where("nome ILIKE ? OR email ILIKE ? OR cpf ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).Scopes(search).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	var customerModels []*model.CustomerModel
	if err := repo.db.WithContext(ctx).
		Scopes(search).
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&customerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, total, nil
}

// escapeLike keeps user input from acting as LIKE wildcards.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toCustomerDomain(m *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		CPF:          m.CPF,
		PasswordHash: m.PasswordHash,
		Role:         entity.ParseRole(m.Role),
		Balance:      m.SaldoPontos,
		TotalEarned:  m.TotalPontosGanhos,
		TotalSpent:   m.TotalPontosGastos,
		Version:      m.Version,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromCustomerDomain(c *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:                c.ID,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		CPF:               c.CPF,
		PasswordHash:      c.PasswordHash,
		Role:              c.Role.String(),
		SaldoPontos:       c.Balance,
		TotalPontosGanhos: c.TotalEarned,
		TotalPontosGastos: c.TotalSpent,
		Version:           c.Version,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
