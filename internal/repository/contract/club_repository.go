package contract

import (
	"context"

	"rso-assistant-be/internal/entity"
)

type ClubRepository interface {
	Create(ctx context.Context, club *entity.Club) error
	FindById(ctx context.Context, id int64) (*entity.Club, error)
	FindAll(ctx context.Context) ([]*entity.Club, error)
	Update(ctx context.Context, club *entity.Club) error
	Delete(ctx context.Context, id int64) error
}
