// Package risk computes the dashboard aggregates over a tenant's tickets:
// total revenue at risk, aging buckets and the weekly trend. All three views
// are derived from one filtered snapshot so they can never disagree.
package risk

import (
	"sort"
	"time"

	"fieldops/internal/domain/billing"
	"fieldops/internal/domain/entities"
)

const (
	DefaultWarningDays  = 3
	DefaultCriticalDays = 7
	DefaultTrendWeeks   = 8
)

// Options are the caller-supplied aggregation knobs. Zero values fall back
// to the defaults above.
type Options struct {
	WarningDays  int
	CriticalDays int
	TrendWeeks   int
}

// WithDefaults fills unset thresholds. Callers that key anything off the
// options (e.g. a cache) must normalize first so zero values and explicit
// defaults refer to the same aggregate.
func (o Options) WithDefaults() Options {
	if o.WarningDays <= 0 {
		o.WarningDays = DefaultWarningDays
	}
	if o.CriticalDays <= 0 {
		o.CriticalDays = DefaultCriticalDays
	}
	if o.TrendWeeks <= 0 {
		o.TrendWeeks = DefaultTrendWeeks
	}
	return o
}

// BucketStat is a count plus summed dollar value.
type BucketStat struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

func (b *BucketStat) add(amount float64) {
	b.Count++
	b.Amount = billing.RoundToCent(b.Amount + amount)
}

// AgingBuckets splits the at-risk set by ticket age. An age exactly equal to
// a threshold falls into the lower bucket.
type AgingBuckets struct {
	Fresh    BucketStat `json:"fresh"`
	Warning  BucketStat `json:"warning"`
	Critical BucketStat `json:"critical"`
}

// WeekStat is one ISO-8601 week of the creation trend.
type WeekStat struct {
	Year   int     `json:"year"`
	Week   int     `json:"week"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// Summary is the full at-risk aggregate returned to the dashboard.
type Summary struct {
	TotalAtRisk float64                              `json:"total_at_risk"`
	Count       int                                  `json:"count"`
	ByStatus    map[entities.TicketStatus]BucketStat `json:"by_status"`
	Aging       AgingBuckets                         `json:"aging"`
	Trend       []WeekStat                           `json:"trend"`
	ComputedAt  time.Time                            `json:"computed_at"`
}

// AtRisk reports whether a ticket's value is not yet confirmed by an
// inspector signature.
func AtRisk(t entities.FieldTicket) bool {
	if t.IsDeleted {
		return false
	}
	return t.Status == entities.TicketStatusDraft || t.Status == entities.TicketStatusPendingSignature
}

// Summarize computes all three views from the given snapshot. The snapshot
// is read once by the caller; Summarize never refetches.
func Summarize(tickets []entities.FieldTicket, now time.Time, opts Options) Summary {
	opts = opts.WithDefaults()

	summary := Summary{
		ByStatus:   make(map[entities.TicketStatus]BucketStat),
		ComputedAt: now,
	}

	type weekKey struct {
		year int
		week int
	}
	trendStart := now.AddDate(0, 0, -7*opts.TrendWeeks)
	weeks := make(map[weekKey]*WeekStat)

	for _, t := range tickets {
		if !AtRisk(t) {
			continue
		}

		summary.Count++
		summary.TotalAtRisk = billing.RoundToCent(summary.TotalAtRisk + t.TotalAmount)

		stat := summary.ByStatus[t.Status]
		stat.add(t.TotalAmount)
		summary.ByStatus[t.Status] = stat

		ageDays := int(now.Sub(t.WorkDate).Hours() / 24)
		switch {
		case ageDays <= opts.WarningDays:
			summary.Aging.Fresh.add(t.TotalAmount)
		case ageDays <= opts.CriticalDays:
			summary.Aging.Warning.add(t.TotalAmount)
		default:
			summary.Aging.Critical.add(t.TotalAmount)
		}

		if t.CreatedAt.Before(trendStart) {
			continue
		}
		year, week := t.CreatedAt.ISOWeek()
		key := weekKey{year: year, week: week}
		ws, ok := weeks[key]
		if !ok {
			ws = &WeekStat{Year: year, Week: week}
			weeks[key] = ws
		}
		ws.Count++
		ws.Amount = billing.RoundToCent(ws.Amount + t.TotalAmount)
	}

	summary.Trend = make([]WeekStat, 0, len(weeks))
	for _, ws := range weeks {
		summary.Trend = append(summary.Trend, *ws)
	}
	sort.Slice(summary.Trend, func(i, j int) bool {
		if summary.Trend[i].Year != summary.Trend[j].Year {
			return summary.Trend[i].Year < summary.Trend[j].Year
		}
		return summary.Trend[i].Week < summary.Trend[j].Week
	})

	return summary
}
