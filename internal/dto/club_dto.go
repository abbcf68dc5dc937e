package dto

import "time"

type CreateClubRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ClubType    string `json:"club_type"`
	Link        string `json:"link" validate:"omitempty,url"`
}

type UpdateClubRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ClubType    string `json:"club_type"`
	Link        string `json:"link" validate:"omitempty,url"`
}

type ClubResponse struct {
	Id          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ClubType    string    `json:"club_type"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
}
