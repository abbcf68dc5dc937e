package service

import (
	"context"

	"rso-assistant-be/internal/dto"
	"rso-assistant-be/internal/pkg/apperrors"
	"rso-assistant-be/internal/pkg/logger"
	"rso-assistant-be/pkg/pdfload"
	"rso-assistant-be/pkg/rag/index"
)

type IIngestService interface {
	Reindex(ctx context.Context) (*dto.ReindexResponse, error)
}

// ingestService rebuilds the passage table from the PDF drop directory.
type ingestService struct {
	indexer *index.Indexer
	dataDir string
	logger  logger.ILogger
}

func NewIngestService(indexer *index.Indexer, dataDir string, log logger.ILogger) IIngestService {
	return &ingestService{
		indexer: indexer,
		dataDir: dataDir,
		logger:  log,
	}
}

func (s *ingestService) Reindex(ctx context.Context) (*dto.ReindexResponse, error) {
	docs, err := pdfload.LoadDirectory(s.dataDir)
	if err != nil {
		return nil, apperrors.Upstream("load", err)
	}

	s.logger.Info("ingest", "reindex started", map[string]interface{}{
		"data_dir": s.dataDir,
		"pages":    len(docs),
	})

	n, err := s.indexer.Reindex(ctx, docs)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ingest", "reindex finished", map[string]interface{}{
		"indexed_chunks": n,
	})

	return &dto.ReindexResponse{IndexedChunks: n}, nil
}
