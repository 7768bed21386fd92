// Package filter holds the shared search criteria for the job list.
//
// The criteria live in a single Store shared by every consumer; the query
// engine re-reads them on each recompute. Values are plain strings and are
// never validated here; matching tolerance is entirely the query engine's
// concern. Criteria are not persisted: a fresh run starts empty.
package filter

import "sync"

// Criteria is the current set of active filter values. Fields are always
// defined (empty string means "any"), so predicate logic never needs
// nil-checks beyond emptiness.
type Criteria struct {
	Keyword         string
	Location        string
	Category        string
	JobType         string
	ExperienceLevel string
	SalaryRange     string
}

// Patch is a partial criteria update; nil fields are left unchanged.
type Patch struct {
	Keyword         *string
	Location        *string
	Category        *string
	JobType         *string
	ExperienceLevel *string
	SalaryRange     *string
}

// Store is the process-wide holder of the active Criteria. Update
// shallow-merges and notifies subscribers synchronously, so the last writer
// within a synchronous task wins with no interleaving.
type Store struct {
	mu       sync.Mutex
	criteria Criteria
	subs     []func(Criteria)
}

// NewStore returns a Store with empty criteria.
func NewStore() *Store { return &Store{} }

// Criteria returns a copy of the current criteria.
func (s *Store) Criteria() Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// Subscribe registers fn to be called synchronously on every update.
func (s *Store) Subscribe(fn func(Criteria)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Update merges the patch into the current criteria and notifies all
// subscribers before returning. Resetting pagination on a filter change is
// the caller's responsibility; the Store only holds criteria.
func (s *Store) Update(p Patch) {
	s.mu.Lock()
	if p.Keyword != nil {
		s.criteria.Keyword = *p.Keyword
	}
	if p.Location != nil {
		s.criteria.Location = *p.Location
	}
	if p.Category != nil {
		s.criteria.Category = *p.Category
	}
	if p.JobType != nil {
		s.criteria.JobType = *p.JobType
	}
	if p.ExperienceLevel != nil {
		s.criteria.ExperienceLevel = *p.ExperienceLevel
	}
	if p.SalaryRange != nil {
		s.criteria.SalaryRange = *p.SalaryRange
	}
	c := s.criteria
	subs := make([]func(Criteria), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(c)
	}
}

// Reset clears every criteria field and notifies subscribers.
func (s *Store) Reset() {
	empty := ""
	s.Update(Patch{
		Keyword:         &empty,
		Location:        &empty,
		Category:        &empty,
		JobType:         &empty,
		ExperienceLevel: &empty,
		SalaryRange:     &empty,
	})
}

// IsEmpty reports whether no filter is active.
func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}
