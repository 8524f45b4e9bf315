package db

import "sync"

// SQLite has no change notification, so live queries are built from a small
// in-process hub: every successful write pokes the table's subscribers, and
// each subscription re-runs its query and re-emits a fresh snapshot.

// Subscription is a live view over one query. C carries full snapshots; a
// slow receiver only ever misses intermediate states, never the latest one.
// Each subscription is independent: cancelling one does not affect others.
type Subscription[T any] struct {
	C <-chan []T

	out  chan []T
	done chan struct{}
	once sync.Once
	stop func()
}

// Cancel terminates the subscription. Safe to call more than once.
func (s *Subscription[T]) Cancel() {
	s.once.Do(func() {
		close(s.done)
		s.stop()
	})
}

// notifier fans write notifications out to per-table subscribers.
type notifier struct {
	mu     sync.Mutex
	subs   map[string]map[int]chan struct{}
	nextID int
	closed bool
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[string]map[int]chan struct{})}
}

// notify wakes all subscribers of a table. The signal channel is buffered
// with capacity one, so bursts of writes coalesce into a single re-query.
func (n *notifier) notify(table string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		// Signal channels are closed during shutdown; sending would panic.
		return
	}
	for _, ch := range n.subs[table] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (n *notifier) subscribe(table string) (int, chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	id := n.nextID
	ch := make(chan struct{}, 1)
	if n.subs[table] == nil {
		n.subs[table] = make(map[int]chan struct{})
	}
	n.subs[table][id] = ch
	if n.closed {
		close(ch)
	}
	return id, ch
}

func (n *notifier) unsubscribe(table string, id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.subs[table], id)
}

// close wakes every subscriber one last time so observation goroutines exit
// when the store shuts down.
func (n *notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for _, table := range n.subs {
		for _, ch := range table {
			close(ch)
		}
	}
}

// observe starts a live query against one table. The query runs once up
// front and again after every write notification; each run replaces the
// pending snapshot so the receiver always sees the most recent state.
func observe[T any](db *DB, table string, query func() ([]T, error)) *Subscription[T] {
	id, signal := db.watch.subscribe(table)

	sub := &Subscription[T]{
		out:  make(chan []T, 1),
		done: make(chan struct{}),
		stop: func() { db.watch.unsubscribe(table, id) },
	}
	sub.C = sub.out

	emit := func() {
		rows, err := query()
		if err != nil {
			return
		}
		// Latest snapshot wins; never block on a slow receiver.
		select {
		case <-sub.out:
		default:
		}
		select {
		case sub.out <- rows:
		case <-sub.done:
		}
	}

	go func() {
		emit()
		for {
			select {
			case <-sub.done:
				return
			case _, ok := <-signal:
				if !ok {
					return
				}
				emit()
			}
		}
	}()

	return sub
}
