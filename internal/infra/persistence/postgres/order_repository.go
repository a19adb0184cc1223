package postgres

import (
	"context"

	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	"clubefast/internal/domain/repository"
	"clubefast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its line items in one statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return orderCreateError(err)
	}

	order.CreatedAt = orderM.CreatedAt
	for i := range orderM.Items {
		if i < len(order.Items) {
			order.Items[i].ID = orderM.Items[i].ID
		}
	}

	return nil
}

// orderCreateError maps an insert failure on pedidos_fast or its items to a domain error.
func orderCreateError(err error) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateOrder
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrCustomerNotFound.WrapMessage("invalid customer reference")
	case isValueOutOfRange(err):
		return domainerrors.ErrInvoiceUnreadable.WrapMessage("order values exceed column limits")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}
}

func (repo *orderRepository) ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("impressao_digital = ?", fingerprint).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check order fingerprint")
	}

	return count > 0, nil
}

func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("cliente_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	items := make([]entity.LineItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.LineItem{
			ID:          item.ID,
			Code:        item.Code,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
			Eligible:    item.Eligible,
			Category:    item.Category,
			Rate:        item.Rate,
			Points:      item.Points,
		})
	}

	return &entity.Order{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		OrderNumber:   m.OrderNumber,
		CustomerName:  m.CustomerName,
		OrderDate:     m.OrderDate,
		DeclaredTotal: m.DeclaredTotal,
		EligibleTotal: m.EligibleTotal,
		TotalPoints:   m.TotalPoints,
		Provider:      m.Provider,
		ImageKey:      m.ImageKey,
		Fingerprint:   m.Fingerprint,
		Items:         items,
		CreatedAt:     m.CreatedAt,
	}
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(o.Items))
	for _, item := range o.Items {
		id := item.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		items = append(items, model.OrderItemModel{
			ID:          id,
			OrderID:     o.ID,
			Code:        item.Code,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
			Eligible:    item.Eligible,
			Category:    item.Category,
			Rate:        item.Rate,
			Points:      item.Points,
		})
	}

	return &model.OrderModel{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		OrderDate:     o.OrderDate,
		DeclaredTotal: o.DeclaredTotal,
		EligibleTotal: o.EligibleTotal,
		TotalPoints:   o.TotalPoints,
		Provider:      o.Provider,
		ImageKey:      o.ImageKey,
		Fingerprint:   o.Fingerprint,
		CreatedAt:     o.CreatedAt,
		Items:         items,
	}
}
