package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/subtally/subtally/internal/clock"
	revenuedomain "github.com/subtally/subtally/internal/revenue/domain"
	settingsdomain "github.com/subtally/subtally/internal/settings/domain"
	subscriptiondomain "github.com/subtally/subtally/internal/subscription/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB               *gorm.DB
	Log              *zap.Logger
	Clock            clock.Clock
	SubscriptionRepo subscriptiondomain.Repository
	SettingsRepo     settingsdomain.Repository
}

type Service struct {
	db               *gorm.DB
	log              *zap.Logger
	clock            clock.Clock
	subscriptionRepo subscriptiondomain.Repository
	settingsRepo     settingsdomain.Repository
}

func NewService(p Params) revenuedomain.Service {
	return &Service{
		db:               p.DB,
		log:              p.Log.Named("revenue.service"),
		clock:            p.Clock,
		subscriptionRepo: p.SubscriptionRepo,
		settingsRepo:     p.SettingsRepo,
	}
}

func (s *Service) Overview(ctx context.Context, filters revenuedomain.Filters) (revenuedomain.MetricsResult, error) {
	subscriptions, err := s.subscriptionRepo.List(ctx, s.db)
	if err != nil {
		return revenuedomain.MetricsResult{}, err
	}
	settings, err := s.settingsRepo.Get(ctx, s.db)
	if err != nil {
		return revenuedomain.MetricsResult{}, err
	}

	result := Compute(subscriptions, settings, filters, s.clock.Now())
	s.log.Debug("metrics computed",
		zap.Int("subscriptions", len(subscriptions)),
		zap.Int("active", result.ActiveCount),
		zap.String("mrr_base", result.MRRBase.String()),
	)
	return result, nil
}

// Compute folds a snapshot of subscriptions and settings into a
// MetricsResult. It is a pure function of its inputs: no I/O, no stored
// state, and no failure path. Malformed field values degrade per the
// normalizer, converter, and classifier rules instead of erroring.
func Compute(
	subscriptions []subscriptiondomain.Subscription,
	settings settingsdomain.Settings,
	filters revenuedomain.Filters,
	now time.Time,
) revenuedomain.MetricsResult {
	converter := NewConverter(settings)
	base := strings.ToUpper(settings.BaseCurrency)

	var active, cancelled, pausedOrHold []subscriptiondomain.Subscription
	for _, sub := range subscriptions {
		if !matchesFilters(sub, filters, base) {
			continue
		}
		switch subscriptiondomain.NormalizeStatus(sub.Status) {
		case subscriptiondomain.StatusCancelled:
			cancelled = append(cancelled, sub)
		case subscriptiondomain.StatusPaused, subscriptiondomain.StatusHold:
			pausedOrHold = append(pausedOrHold, sub)
		default:
			active = append(active, sub)
		}
	}

	mrrBase := decimal.Zero
	perCurrency := make(map[string]revenuedomain.CurrencyTotals)
	for _, sub := range active {
		monthlyRaw := MonthlyEquivalent(sub.Amount, sub.RepeatEveryCount, sub.RepeatEveryUnit)
		code := sub.CurrencyOrDefault(base)
		monthlyBase := converter.ToBase(monthlyRaw, code)

		mrrBase = mrrBase.Add(monthlyBase)

		totals := perCurrency[code]
		totals.RawMonthly = totals.RawMonthly.Add(monthlyRaw)
		totals.BaseMonthly = totals.BaseMonthly.Add(monthlyBase)
		totals.Unpriced = converter.Unpriced(code)
		perCurrency[code] = totals
	}
	arrBase := mrrBase.Mul(twelve)

	window := filters.WindowDays
	if window <= 0 {
		window = settings.WindowDays
	}

	var dueSoon, overdue []revenuedomain.RenewalEntry
	for _, sub := range active {
		classification := Classify(sub.NextBillingDate, now, window)
		switch classification.Bucket {
		case revenuedomain.BucketDueSoon:
			dueSoon = append(dueSoon, revenuedomain.RenewalEntry{Subscription: sub, DayDistance: *classification.DayDistance})
		case revenuedomain.BucketOverdue:
			overdue = append(overdue, revenuedomain.RenewalEntry{Subscription: sub, DayDistance: *classification.DayDistance})
		}
	}
	sortRenewals(dueSoon)
	sortRenewals(overdue)
	dueSoon = capRenewals(dueSoon)
	overdue = capRenewals(overdue)

	churned := 0
	currentMonth := truncateToMonth(now)
	for _, sub := range cancelled {
		if sub.CancelledAt != nil && truncateToMonth(*sub.CancelledAt).Equal(currentMonth) {
			churned++
		}
	}

	return revenuedomain.MetricsResult{
		BaseCurrency:       base,
		DisplayCurrency:    settings.DisplayOrBase(),
		MRRBase:            mrrBase,
		ARRBase:            arrBase,
		MRRDisplay:         converter.BaseToDisplay(mrrBase),
		ARRDisplay:         converter.BaseToDisplay(arrBase),
		PerCurrencyMonthly: perCurrency,
		DueSoon:            dueSoon,
		Overdue:            overdue,
		ChurnedThisMonth:   churned,
		ActiveCount:        len(active),
		PausedCount:        len(pausedOrHold),
		CancelledCount:     len(cancelled),
		ComputedAt:         now,
	}
}

func matchesFilters(sub subscriptiondomain.Subscription, filters revenuedomain.Filters, base string) bool {
	if query := strings.ToLower(strings.TrimSpace(filters.Query)); query != "" {
		matched := strings.Contains(strings.ToLower(sub.Title), query) ||
			strings.Contains(strings.ToLower(sub.ClientName), query) ||
			strings.Contains(strings.ToLower(sub.DisplayID()), query)
		if !matched {
			return false
		}
	}

	switch filters.Status {
	case "", revenuedomain.StatusFilterAll:
	case revenuedomain.StatusFilterPaused:
		status := subscriptiondomain.NormalizeStatus(sub.Status)
		if status != subscriptiondomain.StatusPaused && status != subscriptiondomain.StatusHold {
			return false
		}
	default:
		if subscriptiondomain.NormalizeStatus(sub.Status) != subscriptiondomain.Status(filters.Status) {
			return false
		}
	}

	if currency := strings.ToUpper(strings.TrimSpace(filters.Currency)); currency != "" && !strings.EqualFold(currency, revenuedomain.CurrencyFilterAll) {
		if sub.CurrencyOrDefault(base) != currency {
			return false
		}
	}

	return true
}

func sortRenewals(entries []revenuedomain.RenewalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Subscription.NextBillingDate.Before(*entries[j].Subscription.NextBillingDate)
	})
}

func capRenewals(entries []revenuedomain.RenewalEntry) []revenuedomain.RenewalEntry {
	if len(entries) > revenuedomain.RenewalDisplayCap {
		return entries[:revenuedomain.RenewalDisplayCap]
	}
	return entries
}
