package mapper

import (
	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/model"
)

type FinancialMapper struct{}

func NewFinancialMapper() *FinancialMapper {
	return &FinancialMapper{}
}

func (m *FinancialMapper) ToEntity(f *model.FinancialRecord) *entity.FinancialRecord {
	if f == nil {
		return nil
	}

	return &entity.FinancialRecord{
		Id:                 f.Id,
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
		CreatedAt:          f.CreatedAt,
	}
}

func (m *FinancialMapper) ToModel(f *entity.FinancialRecord) *model.FinancialRecord {
	if f == nil {
		return nil
	}

	return &model.FinancialRecord{
		Id:                 f.Id,
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
		CreatedAt:          f.CreatedAt,
	}
}

func (m *FinancialMapper) ToEntities(records []*model.FinancialRecord) []*entity.FinancialRecord {
	entities := make([]*entity.FinancialRecord, len(records))
	for i, f := range records {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
