package implementation

import (
	"context"
	"errors"

	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/mapper"
	"rso-assistant-be/internal/model"
	"rso-assistant-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ClubRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ClubMapper
}

func NewClubRepository(db *gorm.DB) contract.ClubRepository {
	return &ClubRepositoryImpl{
		db:     db,
		mapper: mapper.NewClubMapper(),
	}
}

func (r *ClubRepositoryImpl) Create(ctx context.Context, club *entity.Club) error {
	m := r.mapper.ToModel(club)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*club = *r.mapper.ToEntity(m)
	return nil
}

func (r *ClubRepositoryImpl) FindById(ctx context.Context, id int64) (*entity.Club, error) {
	var m model.Club
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ClubRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Club, error) {
	var models []*model.Club
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ClubRepositoryImpl) Update(ctx context.Context, club *entity.Club) error {
	m := r.mapper.ToModel(club)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*club = *r.mapper.ToEntity(m)
	return nil
}

func (r *ClubRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Club{}, id).Error
}
