package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func writeMinimalDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, f := range minimalFS() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), f.Data, 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "articles"), 0o755))
	return dir
}

func TestSourceSwap(t *testing.T) {
	a := &Catalog{Site: Site{Name: "a"}}
	b := &Catalog{Site: Site{Name: "b"}}
	s := NewSource(a)
	assert.Same(t, a, s.Catalog())
	s.Swap(b)
	assert.Same(t, b, s.Catalog())
}

func TestWatchReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := writeMinimalDir(t)
	initial, err := LoadDir(dir)
	require.NoError(t, err)
	s := NewSource(initial)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, dir, zap.NewNop()) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	courses := "- slug: one\n  title: One\n- slug: two\n  title: Two\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "courses.yaml"), []byte(courses), 0o644))

	require.Eventually(t, func() bool {
		return len(s.Catalog().Courses) == 2
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchKeepsCatalogOnBadReload(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := writeMinimalDir(t)
	initial, err := LoadDir(dir)
	require.NoError(t, err)
	s := NewSource(initial)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, dir, zap.NewNop()) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "courses.yaml"), []byte("- slug: [broken\n"), 0o644))

	time.Sleep(ReloadDebounce + 300*time.Millisecond)
	assert.Same(t, initial, s.Catalog())

	cancel()
	require.NoError(t, <-done)
}
