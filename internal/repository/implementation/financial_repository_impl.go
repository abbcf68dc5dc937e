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

type FinancialRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FinancialMapper
}

func NewFinancialRepository(db *gorm.DB) contract.FinancialRepository {
	return &FinancialRepositoryImpl{
		db:     db,
		mapper: mapper.NewFinancialMapper(),
	}
}

func (r *FinancialRepositoryImpl) Create(ctx context.Context, record *entity.FinancialRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *FinancialRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.FinancialRecord, error) {
	var m model.FinancialRecord
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FinancialRepositoryImpl) FindByClubId(ctx context.Context, clubId int64) ([]*entity.FinancialRecord, error) {
	var models []*model.FinancialRecord
	if err := r.db.WithContext(ctx).Where("club_id = ?", clubId).Order("period_start DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FinancialRepositoryImpl) Update(ctx context.Context, record *entity.FinancialRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *FinancialRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FinancialRecord{}, "id = ?", id).Error
}
