package main

import (
	"context"
	"log"

	"chelas-api/internal/config"
	"chelas-api/internal/db"
	"chelas-api/internal/repository"
	"chelas-api/internal/superprofile"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Siembra el catalogo de intereses a partir de la tabla de hojas del
// SuperProfile. Es idempotente: cada entrada se upserta por id.
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

	interestRepo := repository.NewPgInterestRepository(pool)

	catalog := superprofile.Catalog()
	for _, interest := range catalog {
		if err := interestRepo.Upsert(ctx, interest); err != nil {
			logger.Fatal("seed interest", zap.Error(err), zap.String("interest_id", interest.ID))
		}
	}

	logger.Info("interest catalog seeded", zap.Int("count", len(catalog)))
}
