package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/stockpile/database/seeders"
	"github.com/shashiranjanraj/stockpile/pkg/database"
	"github.com/shashiranjanraj/stockpile/pkg/migration"
)

// stockpile migrate — run all pending migrations.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Connect()
		if err != nil {
			return err
		}
		return migration.New(db).Run()
	},
}

// stockpile migrate:rollback — roll back the last batch.
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Connect()
		if err != nil {
			return err
		}
		return migration.New(db).Rollback()
	},
}

// stockpile migrate:status — show migration status.
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Connect()
		if err != nil {
			return err
		}
		return migration.New(db).Status()
	},
}

// stockpile seed — run all registered seeders.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all registered database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Connect()
		if err != nil {
			return err
		}

		fmt.Println("Seeding database…")
		return seeders.RunAll(db)
	},
}
