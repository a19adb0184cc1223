package usecase

import (
	"context"

	"clubefast/internal/domain/entity"

	"github.com/google/uuid"
)

// RedeemInput asks to exchange points for a prize.
type RedeemInput struct {
	CustomerID uuid.UUID
	PrizeID    uuid.UUID
}

// RedeemOutput is a confirmed redemption and the balance left.
type RedeemOutput struct {
	Redemption *entity.Redemption
	Balance    int
}

// ListRedemptionsInput filters the admin redemption listing.
type ListRedemptionsInput struct {
	CustomerID *uuid.UUID
	Collected  *bool
	Page       Page
}

// RedemptionPage is one page of redemptions.
type RedemptionPage struct {
	Redemptions []*entity.Redemption
	Total       int64
}

// CollectInput marks a redemption as handed over by an admin.
type CollectInput struct {
	RedemptionID uuid.UUID
	AdminID      uuid.UUID
}

// CollectByQRInput marks the redemption encoded in a scanned pickup QR code as handed over.
type CollectByQRInput struct {
	QRData  string
	AdminID uuid.UUID
}

// ExportOutput is a generated spreadsheet.
type ExportOutput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RedemptionUsecase defines the prize redemption and pickup operations.
type RedemptionUsecase interface {
	// Redeem debits the prize cost and records the redemption in one transaction.
	Redeem(ctx context.Context, input *RedeemInput) (*RedeemOutput, error)
	ListMine(ctx context.Context, customerID uuid.UUID, page Page) ([]*entity.Redemption, error)
	// RedemptionQR renders the pickup QR code of a redemption owned by the customer.
	RedemptionQR(ctx context.Context, customerID, redemptionID uuid.UUID) ([]byte, error)

	ListRedemptions(ctx context.Context, input *ListRedemptionsInput) (*RedemptionPage, error)
	MarkCollected(ctx context.Context, input *CollectInput) (*entity.Redemption, error)
	CollectByQR(ctx context.Context, input *CollectByQRInput) (*entity.Redemption, error)
	ExportRedemptions(ctx context.Context, input *ListRedemptionsInput) (*ExportOutput, error)
}
