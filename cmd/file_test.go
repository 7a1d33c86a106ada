package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"listsync/core/listsync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReconcileFiles(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.json", `[{"id": 1, "n": "a"}, {"id": 2}, {"id": 3}]`)
	source := writeFile(t, dir, "source.json", `[{"id": 3}, {"id": 4}, {"id": 1, "n": "b"}]`)

	t.Run("Source Order", func(t *testing.T) {
		result, err := reconcileFiles(target, source, []int{0, 2}, "source", "id", "json")
		require.NoError(t, err)

		var ids []string
		for _, item := range result.Items {
			ids = append(ids, item["id"].(json.Number).String())
		}
		assert.Equal(t, []string{"1", "4", "3"}, ids)
		assert.Equal(t, []int{0, 2}, result.Selection)
		assert.Equal(t, "b", result.Items[0]["n"])
		assert.Equal(t, 1, result.Summary.Changed)
	})

	t.Run("Append", func(t *testing.T) {
		result, err := reconcileFiles(target, source, []int{1}, "append", "id", "json")
		require.NoError(t, err)
		assert.Len(t, result.Items, 3)
		assert.Empty(t, result.Selection)
		assert.Equal(t, 1, result.Summary.SelectionLost)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := reconcileFiles(target, source, []int{9}, "source", "id", "json")
		assert.ErrorIs(t, err, listsync.ErrSelectionOutOfRange)

		_, err = reconcileFiles(target, source, nil, "shuffle", "id", "json")
		assert.ErrorIs(t, err, listsync.ErrInvalidArgument)

		_, err = reconcileFiles(filepath.Join(dir, "missing.json"), source, nil, "source", "id", "json")
		assert.Error(t, err)
	})
}

func TestFileCommand_Output(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.json")

	saved := []any{fileTarget, fileSource, fileOutput, fileSelect, fileStrategy, fileIDField, fileFormat}
	t.Cleanup(func() {
		fileTarget, fileSource, fileOutput = saved[0].(string), saved[1].(string), saved[2].(string)
		fileSelect = saved[3].([]int)
		fileStrategy, fileIDField, fileFormat = saved[4].(string), saved[5].(string), saved[6].(string)
	})

	fileTarget = writeFile(t, dir, "target.json", `[{"id": 1}]`)
	fileSource = writeFile(t, dir, "source.json", `[{"id": 1}, {"id": 2}]`)
	fileOutput = out
	fileStrategy, fileIDField, fileFormat = "source", "id", "json"

	// a failed reconciliation leaves no output behind
	fileSelect = []int{5}
	require.Error(t, fileCmd.RunE(fileCmd, nil))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))

	fileSelect = []int{0}
	require.NoError(t, fileCmd.RunE(fileCmd, nil))
	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var result fileResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Len(t, result.Items, 2)
	assert.Equal(t, []int{0}, result.Selection)
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, &fileResult{Items: []map[string]any{{"id": 1}}, Selection: []int{0}}))
	assert.Contains(t, buf.String(), `"selection": [`)
}

func TestBodyLimit(t *testing.T) {
	assert.Equal(t, 4*1024*1024, bodyLimit(0))
	assert.Equal(t, 2048, bodyLimit(1024))
}
