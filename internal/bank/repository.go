package bank

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"skilltest/internal/domain"
)

// Repository caches the parsed bank with a TTL so menu redraws do not
// re-read and re-parse the file on every keypress.
type Repository struct {
	loader Loader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu     sync.RWMutex
	cached domain.Bank
	expiry time.Time
	loaded bool
}

func NewRepository(loader Loader, ttl time.Duration) *Repository {
	return &Repository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GetBank returns the cached bank, reloading through the loader when
// the cache entry has expired.
func (r *Repository) GetBank(ctx context.Context) (domain.Bank, error) {
	now := r.clock()

	r.mu.RLock()
	if r.loaded && r.expiry.After(now) {
		bank := r.cached
		r.mu.RUnlock()
		return bank, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("bank", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.loaded && r.expiry.After(now) {
			bank := r.cached
			r.mu.RUnlock()
			return bank, nil
		}
		r.mu.RUnlock()

		bank, err := r.loader.LoadBank(ctx)
		if err != nil {
			return domain.Bank{}, err
		}

		r.mu.Lock()
		r.cached = bank
		r.expiry = now.Add(r.ttlWithJitter())
		r.loaded = true
		r.mu.Unlock()
		return bank, nil
	})
	if err != nil {
		return domain.Bank{}, err
	}
	return result.(domain.Bank), nil
}

// Languages lists the available quiz languages in bank order.
func (r *Repository) Languages(ctx context.Context) ([]string, error) {
	bank, err := r.GetBank(ctx)
	if err != nil {
		return nil, err
	}
	return bank.LanguageNames(), nil
}

// Questions returns the bank questions for a language in bank order.
// An unknown language yields domain.ErrNoQuestions.
func (r *Repository) Questions(ctx context.Context, language string) ([]domain.Question, error) {
	bank, err := r.GetBank(ctx)
	if err != nil {
		return nil, err
	}
	questions := bank.Questions(language)
	if len(questions) == 0 {
		return nil, domain.ErrNoQuestions
	}
	return questions, nil
}

func (r *Repository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
