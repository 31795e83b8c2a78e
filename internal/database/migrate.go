package database

import (
	"embed"
	"errors"
	"fmt"
	"log"

	"painterflow/internal/models"

	migrate "github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Models lists every table the application owns, in dependency order.
func Models() []any {
	return []any{
		&models.User{},
		&models.Customer{},
		&models.Job{},
		&models.CalendarEvent{},
		&models.Estimate{},
		&models.EstimateItem{},
		&models.Quote{},
	}
}

// AutoMigrate creates or extends the schema from the model structs.
func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	// quote numbers are per account, matching idx_quotes_user_number of the
	// SQL migrations
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_quotes_user_number ON quotes (user_id, quote_number)").Error; err != nil {
		return fmt.Errorf("automigrate quote number index: %w", err)
	}
	return nil
}

// Migrate picks the SQL migrations on PostgreSQL when sqlMigrations is set
// and falls back to AutoMigrate otherwise.
func Migrate(db *gorm.DB, driver string, sqlMigrations bool) error {
	if sqlMigrations && driver == DriverPostgres {
		return MigrateUp(db)
	}
	return AutoMigrate(db)
}

func newMigrator(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	drv, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}
	return migrate.NewWithInstance("iofs", src, "postgres", drv)
}

// MigrateUp applies every pending SQL migration.
func MigrateUp(db *gorm.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	logVersion(m)
	return nil
}

// MigrateDown rolls back steps migrations, or all of them when steps <= 0.
func MigrateDown(db *gorm.DB, steps int) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	logVersion(m)
	return nil
}

// MigrationVersion reports the applied schema version.
func MigrationVersion(db *gorm.DB) (uint, bool, error) {
	m, err := newMigrator(db)
	if err != nil {
		return 0, false, err
	}
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func logVersion(m *migrate.Migrate) {
	if v, dirty, err := m.Version(); err == nil {
		log.Printf("schema at version %d (dirty=%t)", v, dirty)
	}
}
