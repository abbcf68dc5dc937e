package dto

import "time"

type CreateFinancialRecordRequest struct {
	ClubId             int64     `json:"club_id" validate:"required"`
	PeriodStart        time.Time `json:"period_start" validate:"required"`
	PeriodEnd          time.Time `json:"period_end" validate:"required"`
	CurrentBalance     float64   `json:"current_balance"`
	RevenueDonations   float64   `json:"revenue_donations"`
	RevenueFundraising float64   `json:"revenue_fundraising"`
	RevenueSponsorship float64   `json:"revenue_sponsorship"`
	ExpenseFood        float64   `json:"expense_food"`
	ExpenseGiveaway    float64   `json:"expense_giveaway"`
	ExpenseUniforms    float64   `json:"expense_uniforms"`
}

type FinancialRecordResponse struct {
	Id                 string    `json:"id"`
	ClubId             int64     `json:"club_id"`
	PeriodStart        time.Time `json:"period_start"`
	PeriodEnd          time.Time `json:"period_end"`
	CurrentBalance     float64   `json:"current_balance"`
	RevenueDonations   float64   `json:"revenue_donations"`
	RevenueFundraising float64   `json:"revenue_fundraising"`
	RevenueSponsorship float64   `json:"revenue_sponsorship"`
	ExpenseFood        float64   `json:"expense_food"`
	ExpenseGiveaway    float64   `json:"expense_giveaway"`
	ExpenseUniforms    float64   `json:"expense_uniforms"`
	RevenueTotal       float64   `json:"revenue_total"`
	ExpensesTotal      float64   `json:"expenses_total"`
	CreatedAt          time.Time `json:"created_at"`
}
