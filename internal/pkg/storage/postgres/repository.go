package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const searchColumns = `
	s.id, s.user_id, s.origin, s.destination, s.departure_date, s.return_date,
	s.adults, s.max_price, s.preferred_airlines, s.version,
	COALESCE(u.push_token, ''), s.created_at, s.updated_at
	FROM saved_searches s
	JOIN users u ON u.id = s.user_id`

const offerColumns = `
	search_id, leg, origin, destination, origin_airport_code, destination_airport_code,
	layover_airports, departure_time, arrival_time, carrier, duration, aircraft_code,
	cabin_class, number_of_stops, price, currency`

// Repository handles saved search persistence
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FindSearch returns the user's search with the same route and dates as
// criteria, matching cities case-insensitively.
func (r *Repository) FindSearch(ctx context.Context, criteria dto.SavedSearch) (dto.SavedSearch, error) {
	searches, err := r.querySearches(ctx, `
		WHERE s.user_id = $1
		AND lower(s.origin) = lower($2::text)
		AND lower(s.destination) = lower($3::text)
		AND s.departure_date = $4
		AND s.return_date IS NOT DISTINCT FROM $5::date`,
		criteria.UserID, criteria.Origin, criteria.Destination, criteria.DepartureDate, criteria.ReturnDate)
	if err != nil {
		return dto.SavedSearch{}, fmt.Errorf("failed to find search: %w", err)
	}

	if len(searches) == 0 {
		return dto.SavedSearch{}, ErrNotFound
	}

	return searches[0], nil
}

func (r *Repository) GetSearch(ctx context.Context, id uuid.UUID) (dto.SavedSearch, error) {
	searches, err := r.querySearches(ctx, `WHERE s.id = $1`, id)
	if err != nil {
		return dto.SavedSearch{}, fmt.Errorf("failed to get search: %w", err)
	}

	if len(searches) == 0 {
		return dto.SavedSearch{}, ErrNotFound
	}

	return searches[0], nil
}

// ListSearchesByUser returns the user's searches, newest first.
func (r *Repository) ListSearchesByUser(ctx context.Context, userID uuid.UUID) ([]dto.SavedSearch, error) {
	searches, err := r.querySearches(ctx, `WHERE s.user_id = $1 ORDER BY s.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list searches: %w", err)
	}

	return searches, nil
}

// ListAllSearchesWithSnapshots loads every search with its snapshot and the
// owner's push token in two round trips.
func (r *Repository) ListAllSearchesWithSnapshots(ctx context.Context) ([]dto.SavedSearch, error) {
	searches, err := r.querySearches(ctx, `ORDER BY s.created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list all searches: %w", err)
	}

	return searches, nil
}

// SaveSearch inserts a new search with its snapshot, creating the owning
// user row when missing.
func (r *Repository) SaveSearch(ctx context.Context, search dto.SavedSearch) (dto.SavedSearch, error) {
	if search.ID == uuid.Nil {
		search.ID = uuid.New()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return dto.SavedSearch{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING
	`, search.UserID)
	if err != nil {
		return dto.SavedSearch{}, fmt.Errorf("failed to upsert user: %w", err)
	}

	airlines := search.PreferredAirlines
	if airlines == nil {
		airlines = []string{}
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO saved_searches
			(id, user_id, origin, destination, departure_date, return_date, adults, max_price, preferred_airlines)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING version, created_at, updated_at
	`, search.ID, search.UserID, search.Origin, search.Destination, search.DepartureDate,
		search.ReturnDate, search.Adults, search.MaxPrice, airlines,
	).Scan(&search.Version, &search.CreatedAt, &search.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return dto.SavedSearch{}, ErrAlreadyExists
		}

		return dto.SavedSearch{}, fmt.Errorf("failed to insert search: %w", err)
	}

	if err := insertOffers(ctx, tx, search.ID, search.Snapshot); err != nil {
		return dto.SavedSearch{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return dto.SavedSearch{}, fmt.Errorf("failed to commit: %w", err)
	}

	return search, nil
}

// ReplaceSnapshot swaps the whole snapshot of a search and bumps its version
// in one transaction. It fails with ErrVersionConflict when the stored version
// no longer matches.
func (r *Repository) ReplaceSnapshot(ctx context.Context,
	searchID uuid.UUID,
	version int64,
	snapshot dto.Snapshot,
) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx, `
		UPDATE saved_searches
		SET version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2
	`, searchID, version)
	if err != nil {
		return fmt.Errorf("failed to bump version: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM saved_searches WHERE id = $1)`,
			searchID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check search: %w", err)
		}

		if !exists {
			return ErrNotFound
		}

		return ErrVersionConflict
	}

	if _, err := tx.Exec(ctx, `DELETE FROM snapshot_offers WHERE search_id = $1`, searchID); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	if err := insertOffers(ctx, tx, searchID, snapshot); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

func (r *Repository) DeleteSearch(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM saved_searches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete search: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) UpsertPushToken(ctx context.Context, userID uuid.UUID, token string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, push_token) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET push_token = EXCLUDED.push_token, updated_at = now()
	`, userID, token)
	if err != nil {
		return fmt.Errorf("failed to upsert push token: %w", err)
	}

	return nil
}

// ClearPushToken removes the user's push token. Unknown users are a no-op.
func (r *Repository) ClearPushToken(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET push_token = NULL, updated_at = now()
		WHERE id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear push token: %w", err)
	}

	return nil
}

func (r *Repository) querySearches(ctx context.Context, clause string, args ...any) ([]dto.SavedSearch, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+searchColumns+` `+clause, args...)
	if err != nil {
		return nil, err
	}

	searches, err := pgx.CollectRows(rows, scanSearch)
	if err != nil {
		return nil, err
	}

	if len(searches) == 0 {
		return searches, nil
	}

	ids := make([]string, len(searches))
	for i, search := range searches {
		ids[i] = search.ID.String()
	}

	snapshots, err := r.loadSnapshots(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range searches {
		searches[i].Snapshot = snapshots[searches[i].ID]
		if searches[i].Snapshot == nil {
			searches[i].Snapshot = dto.Snapshot{}
		}
	}

	return searches, nil
}

func (r *Repository) loadSnapshots(ctx context.Context, ids []string) (map[uuid.UUID]dto.Snapshot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+offerColumns+`
		FROM snapshot_offers
		WHERE search_id = ANY($1::uuid[])
		ORDER BY search_id, price, created_at
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make(map[uuid.UUID]dto.Snapshot, len(ids))

	for rows.Next() {
		var (
			searchID      uuid.UUID
			offer         dto.FlightOffer
			leg           string
			departureTime time.Time
			arrivalTime   time.Time
		)

		err := rows.Scan(&searchID, &leg, &offer.Origin, &offer.Destination,
			&offer.OriginAirportCode, &offer.DestinationAirportCode, &offer.LayoverAirports,
			&departureTime, &arrivalTime, &offer.Carrier, &offer.Duration, &offer.AircraftCode,
			&offer.CabinClass, &offer.NumberOfStops, &offer.Price, &offer.Currency)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}

		offer.Leg = dto.Leg(leg)
		offer.DepartureTime = dto.NewLocalDateTime(departureTime)
		offer.ArrivalTime = dto.NewLocalDateTime(arrivalTime)

		snapshots[searchID] = append(snapshots[searchID], offer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate offers: %w", err)
	}

	return snapshots, nil
}

func scanSearch(row pgx.CollectableRow) (dto.SavedSearch, error) {
	var search dto.SavedSearch

	err := row.Scan(&search.ID, &search.UserID, &search.Origin, &search.Destination,
		&search.DepartureDate, &search.ReturnDate, &search.Adults, &search.MaxPrice,
		&search.PreferredAirlines, &search.Version, &search.PushToken,
		&search.CreatedAt, &search.UpdatedAt)

	return search, err
}

func insertOffers(ctx context.Context, tx pgx.Tx, searchID uuid.UUID, offers dto.Snapshot) error {
	for _, offer := range offers {
		layovers := offer.LayoverAirports
		if layovers == nil {
			layovers = []string{}
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO snapshot_offers (id, `+offerColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		`, uuid.New(), searchID, string(offer.Leg), offer.Origin, offer.Destination,
			offer.OriginAirportCode, offer.DestinationAirportCode, layovers,
			offer.DepartureTime.Time, offer.ArrivalTime.Time, offer.Carrier, offer.Duration,
			offer.AircraftCode, offer.CabinClass, offer.NumberOfStops, offer.Price, offer.Currency)
		if err != nil {
			return fmt.Errorf("failed to insert offer: %w", err)
		}
	}

	return nil
}
