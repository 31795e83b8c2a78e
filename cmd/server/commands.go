package main

import (
	"errors"
	"fmt"
	"log"

	"painterflow/internal/config"
	"painterflow/internal/database"
	"painterflow/internal/server"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "painterflow",
	Short:         "Business management for painting contractors",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the PostgreSQL schema with the embedded SQL migrations",
}

var downSteps int

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDB()
		if err != nil {
			return err
		}
		if cfg.DBDriver != database.DriverPostgres {
			log.Printf("driver %s has no SQL migrations, running AutoMigrate", cfg.DBDriver)
			return database.AutoMigrate(db)
		}
		return database.MigrateUp(db)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations (all of them unless --steps is set)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDB()
		if err != nil {
			return err
		}
		if cfg.DBDriver != database.DriverPostgres {
			return errors.New("migrate down needs DB_DRIVER=postgres")
		}
		return database.MigrateDown(db, downSteps)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDB()
		if err != nil {
			return err
		}
		v, dirty, err := database.MigrationVersion(db)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty=%t)\n", v, dirty)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 0, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, versionCmd)
}

func openDB() (*gorm.DB, *config.Config, error) {
	cfg := config.Load()
	db, err := database.Open(cfg.DBDriver, cfg.DBDSN, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}

func serve() error {
	db, cfg, err := openDB()
	if err != nil {
		return err
	}
	if err := database.Migrate(db, cfg.DBDriver, cfg.SQLMigrations); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	r := server.NewRouter(cfg, database.NewStore(db))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
