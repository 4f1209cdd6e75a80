// ABOUTME: Result store holding the fetched cocktails and the filtered view of them
// ABOUTME: Recomputes the displayed subset from the full set on every filter change

package results

import (
	"context"
	"sync"

	"cocktails-app-api/core/domain"
	"cocktails-app-api/core/errors"
	"cocktails-app-api/core/filter"
	"cocktails-app-api/core/interfaces"
)

// Fetcher produces the full result set for a load.
type Fetcher func(ctx context.Context) ([]domain.Cocktail, error)

// Snapshot is a consistent copy of the store state.
type Snapshot struct {
	Rows   []domain.Cocktail
	Query  filter.Query
	Total  int
	Loaded bool
}

// Store holds the full result set, the active query and the displayed subset.
type Store struct {
	mu        sync.RWMutex
	full      []domain.Cocktail
	displayed []domain.Cocktail
	query     filter.Query
	loaded    bool

	view   interfaces.View
	logger interfaces.Logger
}

// NewStore creates an empty store. view and logger may be nil.
func NewStore(view interfaces.View, logger interfaces.Logger) *Store {
	return &Store{
		full:      []domain.Cocktail{},
		displayed: []domain.Cocktail{},
		view:      view,
		logger:    logger,
	}
}

// Load fetches a new full set and replaces the current one.
// On failure the store is left untouched and the error is reported to the view once.
// A context cancelled before the fetch returns discards the result silently.
func (s *Store) Load(ctx context.Context, fetch Fetcher) error {
	cocktails, err := fetch(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		s.debug("Discarding load result, caller cancelled", map[string]interface{}{
			"error": ctxErr.Error(),
		})
		return ctxErr
	}
	if err != nil {
		s.reportError(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.full = append(make([]domain.Cocktail, 0, len(cocktails)), cocktails...)
	s.loaded = true
	s.recomputeLocked()

	if s.logger != nil {
		s.logger.Info("Result set loaded", map[string]interface{}{
			"total":     len(s.full),
			"displayed": len(s.displayed),
		})
	}
	return nil
}

// SetField updates one filter field and recomputes the displayed subset.
func (s *Store) SetField(field filter.Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = s.query.With(field, value)
	s.recomputeLocked()
}

// Clear drops every filter constraint, restoring the full set.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = filter.Query{}
	s.recomputeLocked()
}

// Displayed returns a copy of the currently displayed cocktails.
func (s *Store) Displayed() []domain.Cocktail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Cocktail(nil), s.displayed...)
}

// Full returns a copy of the unfiltered result set.
func (s *Store) Full() []domain.Cocktail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Cocktail(nil), s.full...)
}

// Query returns the active filter query.
func (s *Store) Query() filter.Query {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Snapshot returns rows, query and totals read under one lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Rows:   append([]domain.Cocktail(nil), s.displayed...),
		Query:  s.query,
		Total:  len(s.full),
		Loaded: s.loaded,
	}
}

// recomputeLocked derives displayed from full and notifies the view.
// The view is left alone when nothing was shown and nothing will be.
func (s *Store) recomputeLocked() {
	previous := len(s.displayed)
	s.displayed = filter.Apply(s.full, s.query)

	if s.view == nil || (previous == 0 && len(s.displayed) == 0) {
		return
	}
	s.view.ReplaceRows(append([]domain.Cocktail(nil), s.displayed...))
}

func (s *Store) reportError(err error) {
	if s.logger != nil {
		s.logger.Error("Failed to load result set", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if s.view == nil {
		return
	}
	message := err.Error()
	if errors.IsTransport(err) {
		message = errors.TransportMessage
	}
	s.view.ShowError(message)
}

func (s *Store) debug(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, fields)
	}
}
