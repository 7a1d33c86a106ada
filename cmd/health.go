package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"listsync/core/config"
	"listsync/core/database"
	"listsync/core/logger"
	"listsync/core/storage"
	"listsync/feature/health"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// healthCmd runs the infrastructure checks.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check object storage and the view database",
	Long:  `Checks that the bucket and source prefix exist and that the view tables match the models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		// The schema check reports the missing connection
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			l.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
		}

		svc := health.NewService(client, cfg.Storage.Bucket, cfg.Sync.SourcePrefix, db, l)

		if fixFlag {
			report, err := svc.CheckStorage(ctx)
			if err != nil {
				return fmt.Errorf("storage check failed: %w", err)
			}
			if report.Status != "ok" {
				if err := svc.FixStorage(ctx, report); err != nil {
					return fmt.Errorf("failed to fix storage: %w", err)
				}
			}
		}

		data, err := json.MarshalIndent(svc.CheckAll(ctx), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	healthCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create a missing bucket and source prefix")
	RootCmd.AddCommand(healthCmd)
}
