package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vcsmake/internal/adapters/watcher"
	"go.trai.ch/vcsmake/internal/core/ports"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]ports.WatchEvent
}

func (r *recorder) record(events []ports.WatchEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, events)
}

func (r *recorder) snapshot() [][]ports.WatchEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

func write(path string) ports.WatchEvent {
	return ports.WatchEvent{Path: path, Operation: ports.OpWrite}
}

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(write("/src/vcsmake.yaml"))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.snapshot(), 1)
		assert.Equal(t, []ports.WatchEvent{write("/src/vcsmake.yaml")}, rec.snapshot()[0])
	})
}

func TestDebouncer_Add_Coalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(write("/src/b.json"))
		d.Add(ports.WatchEvent{Path: "/src/a.json", Operation: ports.OpCreate})
		d.Add(write("/src/a.json"))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.snapshot(), 1)
		assert.Equal(t, []ports.WatchEvent{write("/src/a.json"), write("/src/b.json")}, rec.snapshot()[0])
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(write("/src/a.json"))
		time.Sleep(60 * time.Millisecond)
		d.Add(write("/src/b.json"))
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot(), "window restarts on every event")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.snapshot(), 1)
		assert.Len(t, rec.snapshot()[0], 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(time.Second, rec.record)

		d.Add(write("/src/a.json"))
		d.Flush()

		require.Len(t, rec.snapshot(), 1)

		time.Sleep(2 * time.Second)
		synctest.Wait()

		assert.Len(t, rec.snapshot(), 1, "flushed events are not reported again")
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(time.Second, rec.record)

	d.Flush()

	assert.Empty(t, rec.snapshot())
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)

		d.Add(write("/src/a.json"))
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
