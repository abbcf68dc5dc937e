package contract

import (
	"context"

	"rso-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type FinancialRepository interface {
	Create(ctx context.Context, record *entity.FinancialRecord) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.FinancialRecord, error)
	FindByClubId(ctx context.Context, clubId int64) ([]*entity.FinancialRecord, error)
	Update(ctx context.Context, record *entity.FinancialRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}
