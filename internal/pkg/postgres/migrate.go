package postgres

import (
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	_ "github.com/jackc/pgx/v5/stdlib" // драйвер database/sql для goose

	"cryptoshop/internal/pkg/config"
	"cryptoshop/pkg/logger"
)

// Migrate применяет goose-миграции из migrationsFS до последней версии.
// Вызывается на старте сервиса при POSTGRES_MIGRATE=true.
func Migrate(log logger.Logger, cfg *config.Database, migrationsFS fs.FS) error {
	db, err := goose.OpenDBWithDriver("pgx", newDsn(cfg))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("failed to close migration connection",
				logger.NewField("error", closeErr),
			)
		}
	}()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info("database migrations applied")
	return nil
}
