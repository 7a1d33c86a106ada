package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"listsync/core/listsync"
	"listsync/core/logger"
	"listsync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fileTarget   string
	fileSource   string
	fileOutput   string
	fileSelect   []int
	fileStrategy string
	fileIDField  string
	fileFormat   string
)

// fileCmd reconciles two local snapshot files.
var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Reconcile a local list file with a source file",
	Long: `Reconciles --target with --source offline and prints the reconciled list
together with the remapped selection. Nothing is stored.

Example:
  file --target current.json --source fresh.json --select 0,2 --strategy append`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(&logger.Config{Level: "info", Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		result, err := reconcileFiles(fileTarget, fileSource, fileSelect, fileStrategy, fileIDField, fileFormat)
		if err != nil {
			return err
		}

		l.Info("Reconciled",
			zap.Int("deleted", result.Summary.Deleted),
			zap.Int("changed", result.Summary.Changed),
			zap.Int("inserted", result.Summary.Inserted),
			zap.Ints("selection", result.Selection),
		)

		if fileOutput == "" {
			return writeResult(os.Stdout, result)
		}
		return writeResultFile(fileOutput, result)
	},
}

func init() {
	fileCmd.Flags().StringVar(&fileTarget, "target", "", "List to reconcile (required)")
	fileCmd.Flags().StringVar(&fileSource, "source", "", "Source snapshot (required)")
	fileCmd.Flags().StringVarP(&fileOutput, "output", "o", "", "Write the result here instead of stdout")
	fileCmd.Flags().IntSliceVar(&fileSelect, "select", nil, "Selected positions in the target")
	fileCmd.Flags().StringVar(&fileStrategy, "strategy", "source", "Insertion strategy: source or append")
	fileCmd.Flags().StringVar(&fileIDField, "id-field", "id", "Identifier field")
	fileCmd.Flags().StringVar(&fileFormat, "format", "json", "File format: json or ndjson")
	_ = fileCmd.MarkFlagRequired("target")
	_ = fileCmd.MarkFlagRequired("source")

	RootCmd.AddCommand(fileCmd)
}

// fileResult is what the file command prints.
type fileResult struct {
	Items     []map[string]any      `json:"items"`
	Selection []int                 `json:"selection"`
	Summary   reconcile.PlanSummary `json:"summary"`
}

func reconcileFiles(targetPath, sourcePath string, selection []int, strategy, idField, format string) (*fileResult, error) {
	adapter, err := reconcile.AdapterFor(format)
	if err != nil {
		return nil, err
	}
	kind, err := listsync.ParseKind(strategy)
	if err != nil {
		return nil, err
	}

	target, err := readRecords(adapter, targetPath, idField)
	if err != nil {
		return nil, err
	}
	source, err := readRecords(adapter, sourcePath, idField)
	if err != nil {
		return nil, err
	}

	spec := &reconcile.Spec{Adapter: adapter, IDField: idField, Strategy: kind}
	plan, err := reconcile.BuildPlan(target, source, selection, spec)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]any, len(plan.Items))
	for i, item := range plan.Items {
		items[i] = item.Fields
	}
	return &fileResult{Items: items, Selection: plan.Selection, Summary: plan.Summary}, nil
}

func readRecords(adapter reconcile.Adapter, path, idField string) ([]reconcile.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	records, err := adapter.Decode(bytes.NewReader(data), idField)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return records, nil
}

func writeResult(w io.Writer, result *fileResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// writeResultFile writes result to path. The file is only created once there is
// a result to write.
func writeResultFile(path string, result *fileResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := writeResult(f, result); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
