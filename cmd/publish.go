package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"listsync/core/config"
	"listsync/core/logger"
	"listsync/core/reconcile"
	"listsync/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	publishName    string
	publishIDField string
)

// publishCmd uploads a local file as a source snapshot.
var publishCmd = &cobra.Command{
	Use:   "publish <file>",
	Short: "Upload a source snapshot",
	Long:  `Validates a local snapshot (every record needs an identifier) and uploads it under the configured source prefix.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		path := args[0]

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		adapter, err := reconcile.AdapterFor(cfg.Sync.Format)
		if err != nil {
			return err
		}
		idField := publishIDField
		if idField == "" {
			idField = cfg.Sync.IDField
		}
		records, err := adapter.Decode(bytes.NewReader(data), idField)
		if err != nil {
			return fmt.Errorf("invalid snapshot %s: %w", path, err)
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}

		name := publishName
		if name == "" {
			name = filepath.Base(path)
		}
		object := cfg.Sync.ObjectPath(name)

		if err := storage.WriteObject(ctx, client, cfg.Storage.Bucket, object, data, "application/json"); err != nil {
			return err
		}

		l.Info("Snapshot published", zap.String("object", object), zap.Int("records", len(records)))
		return nil
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishName, "name", "", "Object name under the source prefix (default: file name)")
	publishCmd.Flags().StringVar(&publishIDField, "id-field", "", "Identifier field to validate against (default: sync.id_field)")
	RootCmd.AddCommand(publishCmd)
}
