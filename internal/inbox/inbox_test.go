package inbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_FindsCSVs(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "mbank.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ZEN.CSV"), []byte("data!"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "ZEN.CSV", files[0].Name)
	assert.Equal(t, int64(5), files[0].Size)
	assert.Equal(t, "mbank.csv", files[1].Name)
	assert.Equal(t, filepath.Join(dir, "mbank.csv"), files[1].Path)
}

func TestScan_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	processed := filepath.Join(dir, ProcessedDir)
	require.NoError(t, os.MkdirAll(processed, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processed, "old.csv"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "inbox"))
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bank.csv"), []byte("data"), 0o644))

	dst, err := MarkProcessed(dir, "bank.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ProcessedDir, "bank.csv"), dst)

	_, err = os.Stat(filepath.Join(dir, "bank.csv"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(dst)
	assert.NoError(t, err)
}

func TestMarkProcessed_KeepsEarlierFile(t *testing.T) {
	dir := t.TempDir()
	processed := filepath.Join(dir, ProcessedDir)
	require.NoError(t, os.MkdirAll(processed, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(processed, "bank.csv"), []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processed, "bank-1.csv"), []byte("older"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bank.csv"), []byte("new"), 0o644))

	dst, err := MarkProcessed(dir, "bank.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(processed, "bank-2.csv"), dst)

	old, err := os.ReadFile(filepath.Join(processed, "bank.csv"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(old))
}

func TestMarkProcessed_MissingSource(t *testing.T) {
	_, err := MarkProcessed(t.TempDir(), "nope.csv")
	assert.Error(t, err)
}
