package implementation

import (
	"context"
	"fmt"

	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/mapper"
	"rso-assistant-be/internal/model"
	"rso-assistant-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PassageRepositoryImpl struct {
	db       *gorm.DB
	table    string
	matchRPC string
	mapper   *mapper.PassageMapper
}

// NewPassageRepository binds the repository to a passage table and its
// companion match function. Both are deployment-configured; the defaults
// come from model.HandbookPassage.
func NewPassageRepository(db *gorm.DB, table, matchRPC string) contract.PassageRepository {
	if table == "" {
		table = model.HandbookPassage{}.TableName()
	}
	return &PassageRepositoryImpl{
		db:       db,
		table:    table,
		matchRPC: matchRPC,
		mapper:   mapper.NewPassageMapper(),
	}
}

func (r *PassageRepositoryImpl) CreateBulk(ctx context.Context, passages []*entity.Passage) error {
	if len(passages) == 0 {
		return nil
	}
	models := r.mapper.ToModels(passages)
	return r.db.WithContext(ctx).Table(r.table).Create(models).Error
}

func (r *PassageRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Table(r.table).Where("1 = 1").Delete(&model.HandbookPassage{}).Error
}

// MatchNearest calls the database-side match function. Similarity ranking,
// normalization handling, and index usage live in SQL; the Go side only
// ships the query vector and reads rows back.
func (r *PassageRepositoryImpl) MatchNearest(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredPassage, error) {
	if limit <= 0 {
		limit = 5
	}

	type row struct {
		model.HandbookPassage
		Similarity float64
	}
	var rows []row

	queryVector := pgvector.NewVector(embedding)

	query := fmt.Sprintf("SELECT id, content, metadata, similarity FROM %s(?, ?)", r.matchRPC)
	if err := r.db.WithContext(ctx).Raw(query, queryVector, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredPassage, len(rows))
	for i := range rows {
		scored[i] = &contract.ScoredPassage{
			Passage:    r.mapper.ToEntity(&rows[i].HandbookPassage),
			Similarity: rows[i].Similarity,
		}
	}
	return scored, nil
}

func (r *PassageRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(r.table).Count(&count).Error
	return count, err
}
