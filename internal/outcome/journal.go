package outcome

import "sync"

// Journal keeps the most recent outcomes in memory.
type Journal struct {
	mu   sync.RWMutex
	buf  []Outcome
	next int
	full bool
}

// NewJournal creates a journal holding up to size outcomes.
func NewJournal(size int) *Journal {
	if size <= 0 {
		size = 1
	}
	return &Journal{buf: make([]Outcome, size)}
}

// Report implements Reporter.
func (j *Journal) Report(o Outcome) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.buf[j.next] = o
	j.next = (j.next + 1) % len(j.buf)
	if j.next == 0 {
		j.full = true
	}
}

// Recent returns up to limit outcomes, newest first. limit <= 0 returns all.
func (j *Journal) Recent(limit int) ([]Outcome, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	n := j.next
	if j.full {
		n = len(j.buf)
	}
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]Outcome, 0, limit)
	for i := 0; i < limit; i++ {
		idx := (j.next - 1 - i + len(j.buf)) % len(j.buf)
		out = append(out, j.buf[idx])
	}
	return out, nil
}
