package mapper

import (
	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/model"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}

	return &entity.Transaction{
		Id:          t.Id,
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

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}

	return &model.Transaction{
		Id:          t.Id,
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

func (m *TransactionMapper) ToEntities(txs []*model.Transaction) []*entity.Transaction {
	entities := make([]*entity.Transaction, len(txs))
	for i, t := range txs {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
