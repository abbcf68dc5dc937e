package contract

import (
	"context"

	"rso-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	FindByClubId(ctx context.Context, clubId int64) ([]*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}
