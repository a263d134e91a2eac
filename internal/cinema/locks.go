package cinema

import "sync"

// screeningLocks hands out one mutex per screening so that the
// read-validate-persist sequence of a reservation never interleaves with
// another attempt for the same screening. Entries are tiny and screenings are
// few, so they are kept for the lifetime of the process.
type screeningLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newScreeningLocks() *screeningLocks {
	return &screeningLocks{
		locks: make(map[int]*sync.Mutex),
	}
}

func (l *screeningLocks) forScreening(screeningID int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[screeningID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[screeningID] = m
	}

	return m
}
