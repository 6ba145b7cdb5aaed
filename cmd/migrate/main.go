// Aplica en orden los archivos de migrations/*.sql contra la base configurada.
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/rutvikbarbhai/stockflow/pkg/config"
	"github.com/rutvikbarbhai/stockflow/pkg/logger"
)

func main() {
	// .env opcional para desarrollo local
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "migrate"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		log.Fatal().Err(err).Msg("listar migraciones")
	}
	if len(files) == 0 {
		log.Fatal().Msg("no se encontraron archivos en migrations/")
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("leer migración")
		}
		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("aplicar migración")
		}
		log.Info().Str("file", f).Msg("migración aplicada")
	}

	log.Info().Int("total", len(files)).Msg("migraciones completadas")
}
