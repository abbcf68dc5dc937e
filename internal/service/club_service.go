package service

import (
	"context"
	"fmt"

	"rso-assistant-be/internal/dto"
	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/pkg/apperrors"
	"rso-assistant-be/internal/repository/contract"
)

type IClubService interface {
	Create(ctx context.Context, request *dto.CreateClubRequest) (*dto.ClubResponse, error)
	GetById(ctx context.Context, id int64) (*dto.ClubResponse, error)
	GetAll(ctx context.Context) ([]*dto.ClubResponse, error)
	Update(ctx context.Context, id int64, request *dto.UpdateClubRequest) (*dto.ClubResponse, error)
	Delete(ctx context.Context, id int64) error
}

type clubService struct {
	repo contract.ClubRepository
}

func NewClubService(repo contract.ClubRepository) IClubService {
	return &clubService{repo: repo}
}

func (s *clubService) checkStore() error {
	if s.repo == nil {
		return apperrors.Configuration("club", "database is not configured")
	}
	return nil
}

func (s *clubService) Create(ctx context.Context, request *dto.CreateClubRequest) (*dto.ClubResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	club := &entity.Club{
		Name:        request.Name,
		Email:       request.Email,
		Description: request.Description,
		Status:      request.Status,
		ClubType:    request.ClubType,
		Link:        request.Link,
	}
	if err := s.repo.Create(ctx, club); err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	return toClubResponse(club), nil
}

func (s *clubService) GetById(ctx context.Context, id int64) (*dto.ClubResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	club, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	if club == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("club %d not found", id))
	}
	return toClubResponse(club), nil
}

func (s *clubService) GetAll(ctx context.Context) ([]*dto.ClubResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	clubs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	out := make([]*dto.ClubResponse, len(clubs))
	for i, c := range clubs {
		out[i] = toClubResponse(c)
	}
	return out, nil
}

func (s *clubService) Update(ctx context.Context, id int64, request *dto.UpdateClubRequest) (*dto.ClubResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	club, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	if club == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("club %d not found", id))
	}

	club.Name = request.Name
	club.Email = request.Email
	club.Description = request.Description
	club.Status = request.Status
	club.ClubType = request.ClubType
	club.Link = request.Link

	if err := s.repo.Update(ctx, club); err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	return toClubResponse(club), nil
}

func (s *clubService) Delete(ctx context.Context, id int64) error {
	if err := s.checkStore(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Upstream("store", err)
	}
	return nil
}

func toClubResponse(c *entity.Club) *dto.ClubResponse {
	return &dto.ClubResponse{
		Id:          c.Id,
		Name:        c.Name,
		Email:       c.Email,
		Description: c.Description,
		Status:      c.Status,
		ClubType:    c.ClubType,
		Link:        c.Link,
		CreatedAt:   c.CreatedAt,
	}
}
