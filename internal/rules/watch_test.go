package rules

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"career-pivot/internal/model"
)

func TestWatchReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jurisdictions:
  CA:
    licenses:
      LMFT: {total_hours: 3000, direct_hours: 1750, min_weeks: 104, associate_title: AMFT}
`), 0o600))

	reloaded := make(chan *Table, 4)
	failed := make(chan error, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path,
			func(tbl *Table) { reloaded <- tbl },
			func(err error) { failed <- err })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("ignored"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte(`
jurisdictions:
  CA:
    licenses:
      LMFT: {total_hours: 3200, direct_hours: 1750, min_weeks: 104, associate_title: AMFT}
`), 0o600))

	select {
	case tbl := <-reloaded:
		req, ok := tbl.Lookup(model.JurisdictionCA, model.LicenseLMFT)
		require.True(t, ok)
		assert.Equal(t, 3200, req.TotalHours)
	case err := <-failed:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	require.NoError(t, os.WriteFile(path, []byte("jurisdictions: {}\n"), 0o600))

	select {
	case err := <-failed:
		assert.ErrorContains(t, err, "no jurisdictions")
	case <-reloaded:
		t.Fatal("an empty table must not be reloaded")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "rules.yaml"),
		func(*Table) {}, func(error) {})
	assert.Error(t, err)
}
