package dto

import "time"

type CreateTransactionRequest struct {
	ClubId      int64     `json:"club_id" validate:"required"`
	Amount      float64   `json:"amount" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=revenue expense"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Status      string    `json:"status"`
	Vendor      string    `json:"vendor"`
	ReceiptURL  string    `json:"receipt_url" validate:"omitempty,url"`
}

type TransactionResponse struct {
	Id          string    `json:"id"`
	ClubId      int64     `json:"club_id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Vendor      string    `json:"vendor"`
	ReceiptURL  string    `json:"receipt_url"`
	CreatedAt   time.Time `json:"created_at"`
}
