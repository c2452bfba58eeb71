package menu

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Nhongkham198/SGdelivery/internal/core"
	"github.com/Nhongkham198/SGdelivery/internal/ingest"
)

var (
	ErrItemNotFound   = core.ErrItemNotFound
	ErrChoiceNotFound = core.ErrChoiceNotFound
)

// Loader runs one ingestion pass and returns a fresh snapshot.
type Loader interface {
	Load(ctx context.Context) ingest.MenuData
}

// Service caches the latest menu snapshot behind a refresh TTL. Reads serve
// the cached snapshot; a stale one triggers a synchronous re-run of the
// pipeline. The snapshot itself is immutable — refresh swaps it wholesale.
type Service struct {
	loader Loader
	ttl    time.Duration

	mu          sync.RWMutex
	snapshot    ingest.MenuData
	refreshedAt time.Time
}

func NewService(loader Loader, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{loader: loader, ttl: ttl}
}

// Snapshot returns the current menu, refreshing first if the cached one has
// expired or was never loaded.
func (s *Service) Snapshot(ctx context.Context) (ingest.MenuData, time.Time) {
	s.mu.RLock()
	if !s.refreshedAt.IsZero() && time.Since(s.refreshedAt) < s.ttl {
		data, at := s.snapshot, s.refreshedAt
		s.mu.RUnlock()
		return data, at
	}
	s.mu.RUnlock()

	return s.Refresh(ctx)
}

// Refresh forces a full pipeline run now and swaps in the result.
func (s *Service) Refresh(ctx context.Context) (ingest.MenuData, time.Time) {
	data := s.loader.Load(ctx)
	now := time.Now()

	s.mu.Lock()
	s.snapshot = data
	s.refreshedAt = now
	s.mu.Unlock()

	return data, now
}

// PriceItem implements core.MenuReader against the current snapshot. The
// returned price is a copy; order state never aliases menu structures.
func (s *Service) PriceItem(ctx context.Context, itemName string, choices []core.ChoiceRef) (float64, error) {
	data, _ := s.Snapshot(ctx)

	var item *ingest.MenuItem
	for i := range data.Items {
		if data.Items[i].Name == itemName {
			item = &data.Items[i]
			break
		}
	}
	if item == nil {
		return 0, fmt.Errorf("%w: %q", ErrItemNotFound, itemName)
	}

	price := item.Price
	for _, ref := range choices {
		modifier, ok := findModifier(item, ref)
		if !ok {
			return 0, fmt.Errorf("%w: %q / %q", ErrChoiceNotFound, ref.Group, ref.Choice)
		}
		price += modifier
	}
	return price, nil
}

func findModifier(item *ingest.MenuItem, ref core.ChoiceRef) (float64, bool) {
	for _, opt := range item.Options {
		if opt.Name != ref.Group {
			continue
		}
		for _, c := range opt.Choices {
			if c.Name == ref.Choice {
				return c.PriceModifier, true
			}
		}
	}
	return 0, false
}
