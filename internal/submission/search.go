package submission

import (
	"context"
	"sync"

	"github.com/Avraham885/Customers-Services/internal/models"
)

// MinQueryLength is the search policy: shorter queries resolve to an empty
// result without touching the directory.
const MinQueryLength = 2

type BusinessDirectory interface {
	SearchBusinesses(ctx context.Context, query string, limit int) ([]models.BusinessSummary, error)
}

// Searcher runs business-name lookups with a last-query-wins guarantee:
// when a newer query is issued while an older one is still in flight, the
// older response is discarded instead of overwriting the newer results.
// Requests are never cancelled, only ignored.
type Searcher struct {
	dir   BusinessDirectory
	limit int

	mu      sync.Mutex
	seq     uint64
	results []models.BusinessSummary
}

func NewSearcher(dir BusinessDirectory, limit int) *Searcher {
	if limit <= 0 {
		limit = 5
	}
	return &Searcher{dir: dir, limit: limit}
}

// Search issues a lookup for query and returns its results along with
// whether this call was still the latest when it finished. Stale calls
// return latest=false and leave the stored results untouched.
func (s *Searcher) Search(ctx context.Context, query string) ([]models.BusinessSummary, bool, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	if len([]rune(query)) < MinQueryLength {
		return nil, s.install(seq, nil), nil
	}

	found, err := s.dir.SearchBusinesses(ctx, query, s.limit)
	if err != nil {
		return nil, false, err
	}
	return found, s.install(seq, found), nil
}

func (s *Searcher) install(seq uint64, results []models.BusinessSummary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	s.results = results
	return true
}

// Results returns what the latest completed query produced.
func (s *Searcher) Results() []models.BusinessSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}
