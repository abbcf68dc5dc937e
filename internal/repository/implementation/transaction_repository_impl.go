package implementation

import (
	"context"
	"errors"

	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/mapper"
	"rso-assistant-be/internal/model"
	"rso-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransactionMapper
}

func NewTransactionRepository(db *gorm.DB) contract.TransactionRepository {
	return &TransactionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransactionMapper(),
	}
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx *entity.Transaction) error {
	m := r.mapper.ToModel(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.ToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var m model.Transaction
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TransactionRepositoryImpl) FindByClubId(ctx context.Context, clubId int64) ([]*entity.Transaction, error) {
	var models []*model.Transaction
	if err := r.db.WithContext(ctx).Where("club_id = ?", clubId).Order("date DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TransactionRepositoryImpl) Update(ctx context.Context, tx *entity.Transaction) error {
	m := r.mapper.ToModel(tx)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.ToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Transaction{}, "id = ?", id).Error
}
