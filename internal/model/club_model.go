package model

import (
	"time"

	"github.com/google/uuid"
)

type Club struct {
	Id          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:text;not null"`
	Email       string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:text"`
	ClubType    string    `gorm:"type:text"`
	Link        string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Club) TableName() string {
	return "clubs"
}

type Transaction struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClubId      int64     `gorm:"not null;index"`
	Amount      float64   `gorm:"not null"`
	Type        string    `gorm:"type:text"`
	Category    string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	Date        time.Time
	Status      string `gorm:"type:text"`
	Vendor      string `gorm:"type:text"`
	ReceiptURL  string `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type FinancialRecord struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClubId             int64     `gorm:"not null;index"`
	PeriodStart        time.Time
	PeriodEnd          time.Time
	CurrentBalance     float64
	RevenueDonations   float64
	RevenueFundraising float64
	RevenueSponsorship float64
	ExpenseFood        float64
	ExpenseGiveaway    float64
	ExpenseUniforms    float64
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (FinancialRecord) TableName() string {
	return "financial_records"
}
