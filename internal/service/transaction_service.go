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

type ITransactionService interface {
	Create(ctx context.Context, request *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error)
	GetByClubId(ctx context.Context, clubId int64) ([]*dto.TransactionResponse, error)
	Update(ctx context.Context, id uuid.UUID, request *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionService struct {
	repo  contract.TransactionRepository
	clubs contract.ClubRepository
}

func NewTransactionService(repo contract.TransactionRepository, clubs contract.ClubRepository) ITransactionService {
	return &transactionService{repo: repo, clubs: clubs}
}

func (s *transactionService) checkStore() error {
	if s.repo == nil {
		return apperrors.Configuration("transaction", "database is not configured")
	}
	return nil
}

func (s *transactionService) Create(ctx context.Context, request *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	club, err := s.clubs.FindById(ctx, request.ClubId)
	if err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	if club == nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("club %d not found", request.ClubId))
	}

	tx := &entity.Transaction{
		ClubId:      request.ClubId,
		Amount:      request.Amount,
		Type:        request.Type,
		Category:    request.Category,
		Description: request.Description,
		Date:        request.Date,
		Status:      request.Status,
		Vendor:      request.Vendor,
		ReceiptURL:  request.ReceiptURL,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	return toTransactionResponse(tx), nil
}

func (s *transactionService) GetById(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	tx, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	if tx == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("transaction %s not found", id))
	}
	return toTransactionResponse(tx), nil
}

func (s *transactionService) GetByClubId(ctx context.Context, clubId int64) ([]*dto.TransactionResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	txs, err := s.repo.FindByClubId(ctx, clubId)
	if err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	out := make([]*dto.TransactionResponse, len(txs))
	for i, tx := range txs {
		out[i] = toTransactionResponse(tx)
	}
	return out, nil
}

func (s *transactionService) Update(ctx context.Context, id uuid.UUID, request *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := s.checkStore(); err != nil {
		return nil, err
	}
	tx, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	if tx == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("transaction %s not found", id))
	}

	tx.ClubId = request.ClubId
	tx.Amount = request.Amount
	tx.Type = request.Type
	tx.Category = request.Category
	tx.Description = request.Description
	tx.Date = request.Date
	tx.Status = request.Status
	tx.Vendor = request.Vendor
	tx.ReceiptURL = request.ReceiptURL

	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, apperrors.Upstream("store", err)
	}
	return toTransactionResponse(tx), nil
}

func (s *transactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.checkStore(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Upstream("store", err)
	}
	return nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		Id:          t.Id.String(),
		ClubId:      t.ClubId,
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
		Status:      t.Status,
		Vendor:      t.Vendor,
		ReceiptURL:  t.ReceiptURL,
		CreatedAt:   t.CreatedAt,
	}
}
