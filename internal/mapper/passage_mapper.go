package mapper

import (
	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type PassageMapper struct{}

func NewPassageMapper() *PassageMapper {
	return &PassageMapper{}
}

func (m *PassageMapper) ToEntity(p *model.HandbookPassage) *entity.Passage {
	if p == nil {
		return nil
	}

	return &entity.Passage{
		Id:        p.Id,
		Content:   p.Content,
		Metadata:  map[string]any(p.Metadata),
		Embedding: p.Embedding.Slice(),
		CreatedAt: p.CreatedAt,
	}
}

func (m *PassageMapper) ToModel(p *entity.Passage) *model.HandbookPassage {
	if p == nil {
		return nil
	}

	return &model.HandbookPassage{
		Id:        p.Id,
		Content:   p.Content,
		Metadata:  datatypes.JSONMap(p.Metadata),
		Embedding: pgvector.NewVector(p.Embedding),
		CreatedAt: p.CreatedAt,
	}
}

func (m *PassageMapper) ToEntities(passages []*model.HandbookPassage) []*entity.Passage {
	entities := make([]*entity.Passage, len(passages))
	for i, p := range passages {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PassageMapper) ToModels(passages []*entity.Passage) []*model.HandbookPassage {
	models := make([]*model.HandbookPassage, len(passages))
	for i, p := range passages {
		models[i] = m.ToModel(p)
	}
	return models
}
