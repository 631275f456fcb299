package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/logger"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type SnapshotRepository interface {
	ListAllSearchesWithSnapshots(ctx context.Context) ([]dto.SavedSearch, error)
	ReplaceSnapshot(ctx context.Context, searchID uuid.UUID, version int64, snapshot dto.Snapshot) error
}

type SearchLocker interface {
	GetLockKey(searchID string) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (string, bool, error)
	ReleaseLock(ctx context.Context, key, token string) error
}

type Notifier interface {
	Notify(ctx context.Context, pushToken, title, body string) error
}

type ReconciliationConfig struct {
	Concurrency int
	RateLimit   float64
	LockTimeout time.Duration
}

type reconcileOutcome int

const (
	outcomeReconciled reconcileOutcome = iota
	outcomeSkipped
	outcomeFailed
)

// ReconciliationService re-runs every saved search, diffs the cheapest fare
// per leg against the stored snapshot and notifies owners of price moves.
type ReconciliationService struct {
	repo        SnapshotRepository
	searcher    Searcher
	locker      SearchLocker
	notifier    Notifier
	limiter     *rate.Limiter
	concurrency int
	lockTimeout time.Duration
}

func NewReconciliationService(repo SnapshotRepository, searcher Searcher,
	locker SearchLocker, notifier Notifier, cfg ReconciliationConfig,
) *ReconciliationService {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &ReconciliationService{
		repo:        repo,
		searcher:    searcher,
		locker:      locker,
		notifier:    notifier,
		limiter:     rate.NewLimiter(limit, 1),
		concurrency: concurrency,
		lockTimeout: cfg.LockTimeout,
	}
}

// RunCycle reconciles all saved searches. A failing search never stops the
// batch; the returned error is only set when the batch could not be loaded
// or ctx was cancelled.
func (s *ReconciliationService) RunCycle(ctx context.Context) (dto.CycleReport, error) {
	startTime := time.Now()

	searches, err := s.repo.ListAllSearchesWithSnapshots(ctx)
	if err != nil {
		return dto.CycleReport{}, fmt.Errorf("load searches: %w", err)
	}

	report := dto.CycleReport{Total: len(searches)}

	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for _, search := range searches {
		if err := s.limiter.Wait(ctx); err != nil {
			break
		}

		g.Go(func() error {
			outcome, notified := s.reconcileOne(ctx, search)

			mu.Lock()
			defer mu.Unlock()

			switch outcome {
			case outcomeReconciled:
				report.Reconciled++
			case outcomeSkipped:
				report.Skipped++
			case outcomeFailed:
				report.Failed++
			}

			if notified {
				report.Notified++
			}

			return nil
		})
	}

	_ = g.Wait()

	report.Duration = time.Since(startTime)

	slog.InfoContext(ctx, "reconciliation cycle finished",
		slog.Int("total", report.Total),
		slog.Int("reconciled", report.Reconciled),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Int("notified", report.Notified),
		slog.Duration("duration", report.Duration))

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("cycle interrupted: %w", err)
	}

	return report, nil
}

func (s *ReconciliationService) reconcileOne(ctx context.Context, search dto.SavedSearch) (reconcileOutcome, bool) {
	ctx = logger.WithSearchID(ctx, search.ID.String())

	_, notified, err := s.reconcileLocked(ctx, search)

	switch {
	case errors.Is(err, ErrSearchLocked):
		slog.InfoContext(ctx, "search is already being reconciled")
		return outcomeSkipped, false
	case errors.Is(err, ErrInvalidDate):
		slog.WarnContext(ctx, "saved search has an invalid date, skipped", slog.String("error", err.Error()))
		return outcomeSkipped, false
	case err != nil:
		slog.ErrorContext(ctx, "failed to reconcile search", slog.String("error", err.Error()))
		return outcomeFailed, false
	}

	return outcomeReconciled, notified
}

// ReconcileSearch runs one search through query, diff, persist and notify
// while holding its reconciliation lock. It fails with ErrSearchLocked when
// another run holds the lock.
func (s *ReconciliationService) ReconcileSearch(ctx context.Context,
	search dto.SavedSearch,
) ([]dto.LegReconciliation, error) {
	results, _, err := s.reconcileLocked(logger.WithSearchID(ctx, search.ID.String()), search)

	return results, err
}

func (s *ReconciliationService) reconcileLocked(ctx context.Context,
	search dto.SavedSearch,
) ([]dto.LegReconciliation, bool, error) {
	lockKey := s.locker.GetLockKey(search.ID.String())

	token, acquired, err := s.locker.AcquireLock(ctx, lockKey, s.lockTimeout)
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock: %w", err)
	}

	if !acquired {
		return nil, false, ErrSearchLocked
	}

	defer func() {
		if err := s.locker.ReleaseLock(context.WithoutCancel(ctx), lockKey, token); err != nil {
			slog.WarnContext(ctx, "failed to release reconciliation lock", slog.String("error", err.Error()))
		}
	}()

	return s.reconcile(ctx, search)
}

func (s *ReconciliationService) reconcile(ctx context.Context,
	search dto.SavedSearch,
) ([]dto.LegReconciliation, bool, error) {
	offers, err := s.searcher.Search(ctx, search.Criteria())
	if err != nil {
		return nil, false, fmt.Errorf("search: %w", err)
	}

	results := DiffSnapshot(search, offers)

	if !hasNewData(results) {
		slog.InfoContext(ctx, "no offers found for any leg, snapshot kept")
		return results, false, nil
	}

	if err := s.repo.ReplaceSnapshot(ctx, search.ID, search.Version, NextSnapshot(search, results)); err != nil {
		return results, false, fmt.Errorf("replace snapshot: %w", mapRepositoryError(err))
	}

	title, body, ok := Notification(search, results)
	if !ok {
		slog.InfoContext(ctx, "snapshot updated, no significant price change")
		return results, false, nil
	}

	if search.PushToken == "" {
		slog.InfoContext(ctx, "price changed but owner has no push token", slog.String("body", body))
		return results, false, nil
	}

	if err := s.notifier.Notify(ctx, search.PushToken, title, body); err != nil {
		slog.ErrorContext(ctx, "failed to dispatch notification", slog.String("error", err.Error()))
		return results, false, nil
	}

	slog.InfoContext(ctx, "notification dispatched", slog.String("body", body))

	return results, true, nil
}

type legRoute struct {
	leg         dto.Leg
	name        string
	origin      string
	destination string
}

func routesOf(search dto.SavedSearch) []legRoute {
	if !search.IsRoundTrip() {
		return []legRoute{{dto.LegOneWay, "one-way", search.Origin, search.Destination}}
	}

	return []legRoute{
		{dto.LegDeparture, "departure", search.Origin, search.Destination},
		{dto.LegReturn, "return", search.Destination, search.Origin},
	}
}

// DiffSnapshot classifies every leg of search against fresh offers.
func DiffSnapshot(search dto.SavedSearch, offers []dto.FlightOffer) []dto.LegReconciliation {
	routes := routesOf(search)
	results := make([]dto.LegReconciliation, 0, len(routes))

	for _, route := range routes {
		fresh := offersOfLeg(offers, route.leg)

		// one-way compares against the whole snapshot
		old := []dto.FlightOffer(search.Snapshot)
		if search.IsRoundTrip() {
			old = offersOnRoute(search.Snapshot, route.origin, route.destination)
		}

		results = append(results, classify(route, old, fresh))
	}

	return results
}

func classify(route legRoute, old, fresh []dto.FlightOffer) dto.LegReconciliation {
	result := dto.LegReconciliation{
		Leg:      route.leg,
		OldPrice: roundedCheapest(old),
		Offers:   fresh,
	}

	cheapest, ok := flight.Cheapest(fresh)
	if !ok {
		result.Change = dto.PriceNoData
		return result
	}

	newPrice := utils.RoundPrice(cheapest.Price)
	result.NewPrice = &newPrice

	previous := "no previous flights"
	if result.OldPrice != nil {
		previous = fmt.Sprintf("%.2f", *result.OldPrice)
	}

	lowest := utils.FormatPrice(cheapest.Currency, newPrice)

	switch {
	case result.OldPrice == nil || newPrice < *result.OldPrice:
		result.Change = dto.PriceDrop
		result.Message = fmt.Sprintf("%s-%s %s flights: price dropped! New lowest: %s (previous: %s).",
			route.origin, route.destination, route.name, lowest, previous)
	case newPrice > *result.OldPrice:
		result.Change = dto.PriceIncrease
		result.Message = fmt.Sprintf("%s-%s %s flights: lowest price increased. New lowest: %s (previous: %s).",
			route.origin, route.destination, route.name, lowest, previous)
	default:
		result.Change = dto.PriceUnchanged
	}

	return result
}

// NextSnapshot replaces the entries of legs with new data by their cheapest
// offer and keeps old entries of NO_DATA legs.
func NextSnapshot(search dto.SavedSearch, results []dto.LegReconciliation) dto.Snapshot {
	next := dto.Snapshot{}

	for _, result := range results {
		if result.Change != dto.PriceNoData {
			if cheapest, ok := flight.Cheapest(result.Offers); ok {
				next = append(next, cheapest)
			}

			continue
		}

		next = append(next, oldEntries(search, result.Leg)...)
	}

	return next
}

func oldEntries(search dto.SavedSearch, leg dto.Leg) []dto.FlightOffer {
	if !search.IsRoundTrip() {
		return search.Snapshot
	}

	for _, route := range routesOf(search) {
		if route.leg == leg {
			return offersOnRoute(search.Snapshot, route.origin, route.destination)
		}
	}

	return nil
}

// Notification builds the push message for the legs whose price moved.
func Notification(search dto.SavedSearch, results []dto.LegReconciliation) (string, string, bool) {
	fragments := make([]string, 0, len(results))

	for _, result := range results {
		if result.Change.Notifiable() {
			fragments = append(fragments, result.Message)
		}
	}

	if len(fragments) == 0 {
		return "", "", false
	}

	title := fmt.Sprintf("%s-%s flight price change", search.Origin, search.Destination)

	return title, strings.Join(fragments, " "), true
}

func hasNewData(results []dto.LegReconciliation) bool {
	for _, result := range results {
		if result.Change != dto.PriceNoData {
			return true
		}
	}

	return false
}

func offersOfLeg(offers []dto.FlightOffer, leg dto.Leg) []dto.FlightOffer {
	matched := make([]dto.FlightOffer, 0, len(offers))

	for _, offer := range offers {
		if offer.Leg == leg {
			matched = append(matched, offer)
		}
	}

	return matched
}

func offersOnRoute(offers []dto.FlightOffer, origin, destination string) []dto.FlightOffer {
	matched := make([]dto.FlightOffer, 0, len(offers))

	for _, offer := range offers {
		if sameCity(offer.Origin, origin) && sameCity(offer.Destination, destination) {
			matched = append(matched, offer)
		}
	}

	return matched
}

func sameCity(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func roundedCheapest(offers []dto.FlightOffer) *float64 {
	price := flight.CheapestPrice(offers)
	if price == nil {
		return nil
	}

	rounded := utils.RoundPrice(*price)

	return &rounded
}
