package mapper

import (
	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/model"
)

type ClubMapper struct{}

func NewClubMapper() *ClubMapper {
	return &ClubMapper{}
}

func (m *ClubMapper) ToEntity(c *model.Club) *entity.Club {
	if c == nil {
		return nil
	}

	return &entity.Club{
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

func (m *ClubMapper) ToModel(c *entity.Club) *model.Club {
	if c == nil {
		return nil
	}

	return &model.Club{
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

func (m *ClubMapper) ToEntities(clubs []*model.Club) []*entity.Club {
	entities := make([]*entity.Club, len(clubs))
	for i, c := range clubs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
