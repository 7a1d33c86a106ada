package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"listsync/core/config"
	"listsync/core/database"
	"listsync/core/logger"
	"listsync/core/reconcile"
	"listsync/core/storage"
	"listsync/feature/views"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunSync bool
	yesConfirm bool
)

// syncCmd refreshes a stored view from its source snapshot.
var syncCmd = &cobra.Command{
	Use:   "sync <view-id>",
	Short: "Reconcile a stored view with its source snapshot",
	Long: `Reconcile a stored view with the current snapshot of its source.

Records gone from the source are removed, matched records take the source payload
in place and new records are inserted by the view's strategy. The selection follows
the surviving records.

Examples:
  # Report only
  sync 4f8c... --dry-run

  # Apply with interactive confirmation
  sync 4f8c...

  # Apply without prompting
  sync 4f8c... --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Report the plan without saving")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm changes (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	viewID := args[0]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc := views.NewService(views.NewRepository(db), client, cfg.Storage.Bucket, cfg.Sync, l)

	// Step 1: Plan (always runs, never saves)
	l.Info("Planning reconciliation...", zap.String("view", viewID))
	report, err := svc.RefreshView(ctx, viewID, views.RefreshOptions{
		Options: reconcile.Options{DryRun: true},
		Reload:  true,
	})
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	printPlan(l, report.Plan)

	if !report.Plan.HasChanges() {
		l.Info("View is already in sync.")
		return nil
	}
	if dryRunSync {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 2: Apply (if confirmed)
	if !confirmChanges() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	report, err = svc.RefreshView(ctx, viewID, views.RefreshOptions{
		Options: reconcile.Options{Confirmed: true},
	})
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	l.Info("View saved", zap.Bool("saved", report.Saved), zap.Ints("selection", report.Plan.Selection))
	return nil
}

// printPlan logs a reconciliation plan.
func printPlan(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("total_items", s.TotalItems),
		zap.Int("deleted", s.Deleted),
		zap.Int("matched", s.Matched),
		zap.Int("changed", s.Changed),
		zap.Int("inserted", s.Inserted),
		zap.Int("selection_lost", s.SelectionLost),
		zap.Ints("selection", plan.Selection),
	)

	const maxShow = 5
	sample := func(kind string, ids []string) {
		for i, id := range ids {
			if i == maxShow {
				l.Info("Additional ids not shown", zap.String("kind", kind), zap.Int("count", len(ids)-maxShow))
				return
			}
			l.Info("Sample change", zap.String("kind", kind), zap.String("id", id))
		}
	}
	sample("deleted", plan.Deleted)
	sample("updated", plan.Updated)
	sample("inserted", plan.Inserted)
}

// confirmChanges prompts the user for confirmation or uses the --yes flag.
func confirmChanges() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to save the reconciled view: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
