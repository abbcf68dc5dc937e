package bootstrap

import (
	"context"
	"log"
	"time"

	"rso-assistant-be/internal/config"
	"rso-assistant-be/internal/constant"
	"rso-assistant-be/internal/controller"
	"rso-assistant-be/internal/pkg/logger"
	"rso-assistant-be/internal/repository/contract"
	"rso-assistant-be/internal/repository/implementation"
	"rso-assistant-be/internal/repository/memory"
	"rso-assistant-be/internal/service"
	"rso-assistant-be/pkg/database"
	"rso-assistant-be/pkg/embedding"
	"rso-assistant-be/pkg/genai"
	"rso-assistant-be/pkg/rag/index"
	"rso-assistant-be/pkg/rag/prompt"
	"rso-assistant-be/pkg/rag/search"
	"rso-assistant-be/pkg/rag/session"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	ChatController        controller.IChatController
	AdminController       controller.IAdminController
	ClubController        controller.IClubController
	TransactionController controller.ITransactionController
	FinancialController   controller.IFinancialController

	// Exposed for the standalone indexer tool
	Indexer *index.Indexer
}

// NewContainer wires the whole dependency graph. A missing database
// connection is not fatal at startup; the repositories stay nil and the
// pipeline reports a configuration error on first use.
func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var passageRepo contract.PassageRepository
	var clubRepo contract.ClubRepository
	var transactionRepo contract.TransactionRepository
	var financialRepo contract.FinancialRepository

	if cfg.Database.Connection != "" {
		db, err := database.NewGormDB(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("[FATAL] Failed to connect to database: %v", err)
		}
		passageRepo = implementation.NewPassageRepository(db, cfg.Database.PassageTable, cfg.Database.MatchRPC)
		clubRepo = implementation.NewClubRepository(db)
		transactionRepo = implementation.NewTransactionRepository(db)
		financialRepo = implementation.NewFinancialRepository(db)
	} else {
		sysLogger.Warn("bootstrap", "DB_CONNECTION_STRING is empty, storage-backed endpoints will fail", nil)
	}

	embedProvider, err := embedding.NewE5Provider(cfg.Embed.BaseURL, cfg.Embed.Model, cfg.Embed.Dimension)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize embedding provider: %v", err)
	}
	sysLogger.Info("bootstrap", "embedding provider ready", map[string]interface{}{
		"model":     cfg.Embed.Model,
		"dimension": cfg.Embed.Dimension,
	})

	chatModel := genai.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	sysLogger.Info("bootstrap", "chat model ready", map[string]interface{}{
		"model": cfg.Gemini.Model,
	})

	retriever := search.NewRetriever(embedProvider, passageRepo)
	indexer := index.NewIndexer(embedProvider, passageRepo)
	builder := prompt.NewBuilder(constant.DefaultPreface.Render())
	sessions := session.NewManager(chatModel, memory.NewSessionRepository(), genai.GenerationConfig{
		Temperature:     cfg.Gemini.Temperature,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
	})

	chatbotService := service.NewChatbotService(retriever, builder, sessions, sysLogger, service.ChatOptions{
		TopK:             cfg.Retrieve.TopK,
		MatchThreshold:   cfg.Retrieve.MatchThreshold,
		RetrievalTimeout: cfg.Retrieve.RetrievalTimeout,
		ModelTimeout:     cfg.Retrieve.ModelTimeout,
	})
	ingestService := service.NewIngestService(indexer, cfg.Ingest.DataDir, sysLogger)
	clubService := service.NewClubService(clubRepo)
	transactionService := service.NewTransactionService(transactionRepo, clubRepo)
	financialService := service.NewFinancialService(financialRepo, clubRepo)

	// Non-fatal warmup: one tiny retrieval pulls the embedding model into
	// memory so the first real chat does not eat the cold-start cost.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := retriever.Retrieve(ctx, "warmup", 1, 0); err != nil {
			sysLogger.Warn("bootstrap", "warmup probe failed", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			sysLogger.Info("bootstrap", "warmup probe completed", nil)
		}
	}()

	return &Container{
		Logger:                sysLogger,
		ChatController:        controller.NewChatController(chatbotService),
		AdminController:       controller.NewAdminController(ingestService),
		ClubController:        controller.NewClubController(clubService),
		TransactionController: controller.NewTransactionController(transactionService),
		FinancialController:   controller.NewFinancialController(financialService),
		Indexer:               indexer,
	}
}
