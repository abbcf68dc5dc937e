package entity

import (
	"time"

	"github.com/google/uuid"
)

type Club struct {
	Id          int64
	Name        string
	Email       string
	Description string
	Status      string
	ClubType    string
	Link        string
	CreatedAt   time.Time
}

type Transaction struct {
	Id          uuid.UUID
	ClubId      int64
	Amount      float64
	Type        string
	Category    string
	Description string
	Date        time.Time
	Status      string
	Vendor      string
	ReceiptURL  string
	CreatedAt   time.Time
}

type FinancialRecord struct {
	Id                 uuid.UUID
	ClubId             int64
	PeriodStart        time.Time
	PeriodEnd          time.Time
	CurrentBalance     float64
	RevenueDonations   float64
	RevenueFundraising float64
	RevenueSponsorship float64
	ExpenseFood        float64
	ExpenseGiveaway    float64
	ExpenseUniforms    float64
	CreatedAt          time.Time
}

func (f *FinancialRecord) RevenueTotal() float64 {
	return f.RevenueDonations + f.RevenueFundraising + f.RevenueSponsorship
}

func (f *FinancialRecord) ExpensesTotal() float64 {
	return f.ExpenseFood + f.ExpenseGiveaway + f.ExpenseUniforms
}
