package service

import "sync"

// projectLocks serializes timeline recalculation per project within this
// process. Two overlapping runs for the same project would each build an
// independent graph and the later commit would silently overwrite the
// earlier one; the lock removes that race. Cross-process serialization is a
// deployment concern (single writer).
type projectLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *projectLocks) get(projectID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[projectID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[projectID] = m
	}
	return m
}
