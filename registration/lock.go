package registration

import "sync"

// hospitalLocks serializes allocate+save per hospital inside one process.
// Entries are dropped once nobody holds or waits for them.
type hospitalLocks struct {
	mu    sync.Mutex
	locks map[uint]*hospitalLock
}

type hospitalLock struct {
	mu   sync.Mutex
	refs int
}

func (l *hospitalLocks) lock(hospitalID uint) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[uint]*hospitalLock)
	}
	entry, ok := l.locks[hospitalID]
	if !ok {
		entry = &hospitalLock{}
		l.locks[hospitalID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, hospitalID)
		}
		l.mu.Unlock()
	}
}

func (l *hospitalLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
