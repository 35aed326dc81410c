package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"chelas-api/internal/config"
	"chelas-api/internal/db"
	"chelas-api/internal/email"
	apihttp "chelas-api/internal/http"
	"chelas-api/internal/llm"
	"chelas-api/internal/repository"
	"chelas-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	profileRepo := repository.NewPgProfileRepository(pool)
	interestRepo := repository.NewPgInterestRepository(pool)
	conversationRepo := repository.NewPgConversationRepository(pool)
	expenseRepo := repository.NewPgExpenseRepository(pool)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var (
		topicLimiter service.TopicRateLimiter
		redisClient  *redis.Client
	)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := client.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, lobby and rate limits degrade to local", zap.Error(err))
		} else {
			redisClient = client
			topicLimiter = service.NewRedisTopicRateLimiter(client, 30*time.Second, 3)
		}
		cancel()
	}

	if cfg.AuthJWTSecret == "" {
		logger.Warn("auth jwt secret not configured")
	}

	superProfileSvc := service.NewSuperProfileService(logger, profileRepo, interestRepo)
	matchSvc := service.NewMatchService(logger, interestRepo, conversationRepo)
	conversationSvc := service.NewConversationService(logger, conversationRepo)
	topicSvc := service.NewTopicService(logger, llmClient, interestRepo, conversationRepo, topicLimiter)
	analysisSvc := service.NewAnalysisService(logger, llmClient, profileRepo, interestRepo)
	presenceSvc := service.NewPresenceService(logger, profileRepo, redisClient, time.Duration(cfg.PresenceTTLSeconds)*time.Second)
	reportSvc := service.NewReportService(logger, llmClient, expenseRepo, conversationRepo, profileRepo, emailSender)

	router := apihttp.NewRouter(
		logger,
		cfg.AuthJWTSecret,
		apihttp.NewProfileHandler(logger, profileRepo),
		apihttp.NewInterestHandler(logger, interestRepo, superProfileSvc),
		apihttp.NewMatchHandler(logger, matchSvc),
		apihttp.NewConversationHandler(logger, conversationSvc, topicSvc),
		apihttp.NewLobbyHandler(logger, presenceSvc),
		apihttp.NewAnalysisHandler(logger, analysisSvc, superProfileSvc),
		apihttp.NewExpenseHandler(logger, reportSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
