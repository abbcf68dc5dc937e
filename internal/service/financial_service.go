package service

import (
	"context"
	"fmt"

	"rso-assistant-be/internal/dto"
	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/pkg/apperrors"
	"rso-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
)

type IFinancialService interface {
	Create(ctx context.Context, request *dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.FinancialRecordResponse, error)
	GetByClubId(ctx context.Context, clubId int64) ([]*dto.FinancialRecordResponse, error)
	Update(ctx context.Context, id uuid.UUID, request *dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type financialService struct {
	repo  contract.FinancialRepository
	clubs contract.ClubRepository
}

func NewFinancialService(repo contract.FinancialRepository, clubs contract.ClubRepository) IFinancialService {
	return &financialService{repo: repo, clubs: clubs}
}

func (s *financialService) checkStore() error {
	if s.repo == nil {
		return apperrors.Configuration("financial", "database is not configured")
	}
	return nil
}

func (s *financialService) Create(ctx context.Context, request *dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	if !request.PeriodEnd.After(request.PeriodStart) {
		return nil, apperrors.InvalidInput("period_end must be after period_start")
	}

	club, err := s.clubs.FindById(ctx, request.ClubId)
	if err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	if club == nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("club %d not found", request.ClubId))
	}

	record := &entity.FinancialRecord{
		ClubId:             request.ClubId,
		PeriodStart:        request.PeriodStart,
		PeriodEnd:          request.PeriodEnd,
		CurrentBalance:     request.CurrentBalance,
		RevenueDonations:   request.RevenueDonations,
		RevenueFundraising: request.RevenueFundraising,
		RevenueSponsorship: request.RevenueSponsorship,
		ExpenseFood:        request.ExpenseFood,
		ExpenseGiveaway:    request.ExpenseGiveaway,
		ExpenseUniforms:    request.ExpenseUniforms,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	return toFinancialResponse(record), nil
}

func (s *financialService) GetById(ctx context.Context, id uuid.UUID) (*dto.FinancialRecordResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	record, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	if record == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("financial record %s not found", id))
	}
	return toFinancialResponse(record), nil
}

func (s *financialService) GetByClubId(ctx context.Context, clubId int64) ([]*dto.FinancialRecordResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	records, err := s.repo.FindByClubId(ctx, clubId)
	if err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	out := make([]*dto.FinancialRecordResponse, len(records))
	for i, r := range records {
		out[i] = toFinancialResponse(r)
	}
	return out, nil
}

func (s *financialService) Update(ctx context.Context, id uuid.UUID, request *dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	if !request.PeriodEnd.After(request.PeriodStart) {
		return nil, apperrors.InvalidInput("period_end must be after period_start")
	}
	record, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	if record == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("financial record %s not found", id))
	}

	record.ClubId = request.ClubId
	record.PeriodStart = request.PeriodStart
	record.PeriodEnd = request.PeriodEnd
	record.CurrentBalance = request.CurrentBalance
	record.RevenueDonations = request.RevenueDonations
	record.RevenueFundraising = request.RevenueFundraising
	record.RevenueSponsorship = request.RevenueSponsorship
	record.ExpenseFood = request.ExpenseFood
	record.ExpenseGiveaway = request.ExpenseGiveaway
	record.ExpenseUniforms = request.ExpenseUniforms

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	return toFinancialResponse(record), nil
}

func (s *financialService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.checkStore(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Upstream("store", err)
	}
	return nil
}

func toFinancialResponse(f *entity.FinancialRecord) *dto.FinancialRecordResponse {
	return &dto.FinancialRecordResponse{
		Id:                 f.Id.String(),
		ClubId:             f.ClubId,
		PeriodStart:        f.PeriodStart,
		PeriodEnd:          f.PeriodEnd,
		CurrentBalance:     f.CurrentBalance,
		RevenueDonations:   f.RevenueDonations,
		RevenueFundraising: f.RevenueFundraising,
		RevenueSponsorship: f.RevenueSponsorship,
		ExpenseFood:        f.ExpenseFood,
		ExpenseGiveaway:    f.ExpenseGiveaway,
		ExpenseUniforms:    f.ExpenseUniforms,
		RevenueTotal:       f.RevenueTotal(),
		ExpensesTotal:      f.ExpensesTotal(),
		CreatedAt:          f.CreatedAt,
	}
}
