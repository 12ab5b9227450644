package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/intersense/internal/adapters/watcher"
)

// recorder collects debouncer callbacks; fire() invokes them on a goroutine.
type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestDebouncer_CoalescesBurstInSortedOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("package.json")
		d.Add("go.mod")
		d.Add("package.json")
		d.Add("Cargo.toml")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		calls := rec.snapshot()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"Cargo.toml", "go.mod", "package.json"}, calls[0])
	})
}

func TestDebouncer_TimerResetsOnEachAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("src/a.go")
		time.Sleep(50 * time.Millisecond)
		d.Add("src/b.go")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("go.mod")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("go.mod")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
	})
}
