package bus

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/psastudios/content-ms-go/internal/port"
)

// selfWriteWindow is how long a locally recorded write suppresses the
// matching filesystem event. Our own saves already notified same-process
// subscribers; without suppression every save would fan out twice.
const selfWriteWindow = 2 * time.Second

// Bus combines the two notification channels of the content store: explicit
// same-process broadcasts fired by the writer after each save, and filesystem
// events observed when another process writes the same data directory.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan struct{}
	nextID int

	selfMu sync.Mutex
	self   map[string]time.Time

	watcher *fsnotify.Watcher
	done    chan struct{}

	closeOnce sync.Once
}

// compile-time check: *Bus must satisfy port.Bus
var _ port.Bus = (*Bus)(nil)

func New() *Bus {
	return &Bus{
		subs: make(map[int]chan struct{}),
		self: make(map[string]time.Time),
		done: make(chan struct{}),
	}
}

// Subscribe registers a same-process listener. The returned channel has a
// buffer of one so pending notifications coalesce instead of piling up.
func (b *Bus) Subscribe() (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan struct{}, 1)
	b.subs[id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
	return ch, unsubscribe
}

// Notify broadcasts to every subscriber without blocking. A subscriber with
// a notification already pending is skipped; it will re-read the latest state
// anyway when it gets around to the pending one.
func (b *Bus) Notify() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// RecordLocalWrite marks a key file as just written by this process, so the
// watcher ignores the filesystem event our own save is about to cause.
func (b *Bus) RecordLocalWrite(name string) {
	b.selfMu.Lock()
	defer b.selfMu.Unlock()
	b.self[name] = time.Now()
}

// isLocalWrite consumes a pending self-write record for the key. One record
// suppresses exactly one event: each local save produces a single rename
// event, and eating only that one keeps a foreign write landing moments later
// from being swallowed with it.
func (b *Bus) isLocalWrite(name string) bool {
	b.selfMu.Lock()
	defer b.selfMu.Unlock()

	at, ok := b.self[name]
	if !ok {
		return false
	}
	delete(b.self, name)
	return time.Since(at) <= selfWriteWindow
}

// Watch starts the cross-process channel: an fsnotify watch on the data
// directory, filtered to the given key file names. A failure here is a
// degradation, not a crash; the caller logs it and runs same-process only.
func (b *Bus) Watch(dir string, names ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return err
	}
	b.watcher = watcher

	watched := make(map[string]struct{}, len(names))
	for _, n := range names {
		watched[n] = struct{}{}
	}

	go b.watchLoop(watched)
	return nil
}

func (b *Bus) watchLoop(watched map[string]struct{}) {
	for {
		select {
		case <-b.done:
			return
		case ev, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Base(ev.Name)
			if _, ok := watched[name]; !ok {
				continue
			}
			if b.isLocalWrite(name) {
				continue
			}
			b.Notify()
		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("store watcher error: %v", err)
		}
	}
}

func (b *Bus) Close() error {
	var err error
	b.closeOnce.Do(func() {
		close(b.done)
		if b.watcher != nil {
			err = b.watcher.Close()
		}
	})
	return err
}
