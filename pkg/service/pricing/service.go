// Package pricing reads live unit amounts for display.
package pricing

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/storefront/pkg/cache"
	"github.com/amirasaad/storefront/pkg/provider"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Config tunes the lookup. Cache is optional.
type Config struct {
	Concurrency int
	Cache       cache.PriceCache
	CacheTTL    time.Duration
}

// Service maps price identifiers to unit amounts in minor currency units.
type Service struct {
	gateway provider.PaymentGateway
	cfg     Config
	group   singleflight.Group
	logger  *slog.Logger
}

// New creates a new pricing service.
func New(gateway provider.PaymentGateway, cfg Config, logger *slog.Logger) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gateway: gateway,
		cfg:     cfg,
		logger:  logger.With("service", "pricing"),
	}
}

// ParseIDs splits a comma-separated list, trimming blanks and dropping
// empty entries.
func ParseIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// UnitAmounts returns the unit amount of every id. An empty list needs no
// gateway and yields an empty map. Any failed read fails the whole batch
// with the failure of the earliest id in input order.
func (s *Service) UnitAmounts(ctx context.Context, ids []string) (map[string]int64, error) {
	out := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	if err := s.gateway.Ready(); err != nil {
		return nil, err
	}

	distinct := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			out[id] = 0
			distinct = append(distinct, id)
		}
	}

	amounts := make([]int64, len(distinct))
	errs := make([]error, len(distinct))
	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for i, id := range distinct {
		g.Go(func() error {
			amounts[i], errs[i] = s.unitAmount(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	for i, id := range distinct {
		if errs[i] != nil {
			s.logger.Warn("price lookup failed", "price_id", id, "error", errs[i])
			return nil, errs[i]
		}
		out[id] = amounts[i]
	}
	return out, nil
}

func (s *Service) unitAmount(ctx context.Context, id string) (int64, error) {
	if s.cfg.Cache != nil {
		amount, found, err := s.cfg.Cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn("price cache get failed", "price_id", id, "error", err)
		} else if found {
			return amount, nil
		}
	}

	v, err, _ := s.group.Do(id, func() (interface{}, error) {
		p, err := s.gateway.GetPrice(ctx, id)
		if err != nil {
			return int64(0), err
		}
		return p.UnitAmount, nil
	})
	if err != nil {
		return 0, err
	}
	amount := v.(int64)

	if s.cfg.Cache != nil {
		if err := s.cfg.Cache.Set(ctx, id, amount, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("price cache set failed", "price_id", id, "error", err)
		}
	}
	return amount, nil
}
