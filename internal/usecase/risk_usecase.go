package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldops/internal/domain/risk"
	"fieldops/internal/usecase/interfaces"
)

// IRiskUseCase exposes the revenue-at-risk dashboard aggregates.
type IRiskUseCase interface {
	AtRisk(ctx context.Context, tenantID string, opts risk.Options) (risk.Summary, error)
}

// RiskUseCase computes the at-risk summary from one snapshot per call. The
// cache is optional and advisory: dashboard reads tolerate short staleness,
// so a hit skips the store entirely and any cache failure falls through to a
// fresh computation.
type RiskUseCase struct {
	repo  interfaces.IFieldTicketRepository
	cache interfaces.IRiskCache
}

var _ IRiskUseCase = (*RiskUseCase)(nil)

func NewRiskUseCase(repo interfaces.IFieldTicketRepository, cache interfaces.IRiskCache) *RiskUseCase {
	return &RiskUseCase{repo: repo, cache: cache}
}

func (u *RiskUseCase) AtRisk(ctx context.Context, tenantID string, opts risk.Options) (risk.Summary, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return risk.Summary{}, ErrInvalidTenant
	}

	// Normalized before keying so the default request and an explicit
	// request for the default thresholds share one cache entry.
	opts = opts.WithDefaults()
	key := cacheKey(tenantID, opts)
	if u.cache != nil {
		if cached, ok, err := u.cache.Get(ctx, key); err != nil {
			log.Printf("[risk][usecase] cache read failed tenant=%s err=%v", tenantID, err)
		} else if ok {
			return cached, nil
		}
	}

	tickets, err := u.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return risk.Summary{}, err
	}
	summary := risk.Summarize(tickets, time.Now().UTC(), opts)

	if u.cache != nil {
		if err := u.cache.Set(ctx, key, summary); err != nil {
			log.Printf("[risk][usecase] cache write failed tenant=%s err=%v", tenantID, err)
		}
	}
	return summary, nil
}

func cacheKey(tenantID string, opts risk.Options) string {
	return fmt.Sprintf("at-risk:%s:w%d:c%d:t%d", tenantID, opts.WarningDays, opts.CriticalDays, opts.TrendWeeks)
}
