package repository

import (
	"context"
	"errors"
	"fmt"

	"workbrew/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned when no cafe has the requested id.
	ErrNotFound = errors.New("repository: cafe not found")
	// ErrDuplicateName is returned when a cafe with the same name already exists.
	ErrDuplicateName = errors.New("repository: cafe name already exists")
)

const uniqueViolation = "23505"

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repository is the PostgreSQL-backed cafe store.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListWithLocations reads the filtered cafes and the unfiltered location set from one snapshot.
func (r *Repository) ListWithLocations(ctx context.Context, filter models.CafeFilter) ([]models.Cafe, []string, error) {
	var (
		cafes     []models.Cafe
		locations []string
	)

	txOpts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := pgx.BeginTxFunc(ctx, r.db, txOpts, func(tx pgx.Tx) error {
		var err error
		if cafes, err = findAll(ctx, tx, filter); err != nil {
			return err
		}
		locations, err = distinctLocations(ctx, tx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return cafes, locations, nil
}

// Insert persists a new cafe and sets its ID.
func (r *Repository) Insert(ctx context.Context, cafe *models.Cafe) error {
	sql := `
		INSERT INTO cafe (
			name, map_url, img_url, location,
			has_sockets, has_toilet, has_wifi, can_take_calls,
			seats, coffee_price, lat, lng
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, sql,
		cafe.Name, cafe.MapURL, cafe.ImageURL, cafe.Location,
		cafe.HasSockets, cafe.HasToilet, cafe.HasWifi, cafe.CanTakeCalls,
		cafe.Seats, cafe.CoffeePrice, cafe.Lat, cafe.Lng,
	).Scan(&cafe.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateName
		}
		return fmt.Errorf("repository: failed to insert cafe: %w", err)
	}

	return nil
}

// DeleteByID removes one cafe and returns the removed row.
// The row is locked before deletion so a concurrent delete surfaces as ErrNotFound.
func (r *Repository) DeleteByID(ctx context.Context, id int64) (*models.Cafe, error) {
	var removed *models.Cafe

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, "SELECT "+cafeColumns+" FROM cafe WHERE id = $1 FOR UPDATE", id)
		if err != nil {
			return fmt.Errorf("repository: failed to lock cafe: %w", err)
		}
		cafes, err := collectCafes(rows)
		if err != nil {
			return err
		}
		if len(cafes) == 0 {
			return ErrNotFound
		}

		if _, err := tx.Exec(ctx, "DELETE FROM cafe WHERE id = $1", id); err != nil {
			return fmt.Errorf("repository: failed to delete cafe: %w", err)
		}
		removed = &cafes[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

// FindMissingCoordinates returns the cafes that have not been geocoded yet.
func (r *Repository) FindMissingCoordinates(ctx context.Context) ([]models.Cafe, error) {
	rows, err := r.db.Query(ctx, "SELECT "+cafeColumns+" FROM cafe WHERE lat IS NULL ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query cafes without coordinates: %w", err)
	}
	return collectCafes(rows)
}

// UpdateCoordinates stores a geocoded position for a cafe.
func (r *Repository) UpdateCoordinates(ctx context.Context, id int64, coords models.Coordinates) error {
	tag, err := r.db.Exec(ctx, "UPDATE cafe SET lat = $1, lng = $2 WHERE id = $3", coords.Lat, coords.Lng, id)
	if err != nil {
		return fmt.Errorf("repository: failed to update coordinates: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountCafes returns the total number of cafes and how many of them have coordinates.
func (r *Repository) CountCafes(ctx context.Context) (total, mapped int64, err error) {
	err = r.db.QueryRow(ctx, "SELECT COUNT(*), COUNT(lat) FROM cafe").Scan(&total, &mapped)
	if err != nil {
		return 0, 0, fmt.Errorf("repository: failed to count cafes: %w", err)
	}
	return total, mapped, nil
}

// SeedIfEmpty bulk-inserts cafes only when the table holds no rows. It returns the number inserted.
func (r *Repository) SeedIfEmpty(ctx context.Context, cafes []models.Cafe) (int64, error) {
	var inserted int64

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "LOCK TABLE cafe IN EXCLUSIVE MODE"); err != nil {
			return fmt.Errorf("repository: failed to lock cafe table: %w", err)
		}

		var count int64
		if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM cafe").Scan(&count); err != nil {
			return fmt.Errorf("repository: failed to count cafes: %w", err)
		}
		if count > 0 || len(cafes) == 0 {
			return nil
		}

		n, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"cafe"},
			[]string{
				"name", "map_url", "img_url", "location",
				"has_sockets", "has_toilet", "has_wifi", "can_take_calls",
				"seats", "coffee_price", "lat", "lng",
			},
			pgx.CopyFromSlice(len(cafes), func(i int) ([]any, error) {
				c := cafes[i]
				return []any{
					c.Name, c.MapURL, c.ImageURL, c.Location,
					c.HasSockets, c.HasToilet, c.HasWifi, c.CanTakeCalls,
					c.Seats, c.CoffeePrice, c.Lat, c.Lng,
				}, nil
			}),
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return ErrDuplicateName
			}
			return fmt.Errorf("repository: failed to copy cafes: %w", err)
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func findAll(ctx context.Context, q querier, filter models.CafeFilter) ([]models.Cafe, error) {
	sql, args := buildListQuery(filter)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	return collectCafes(rows)
}

func distinctLocations(ctx context.Context, q querier) ([]string, error) {
	rows, err := q.Query(ctx, "SELECT DISTINCT location FROM cafe ORDER BY location ASC")
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query locations: %w", err)
	}
	defer rows.Close()

	locations := []string{}
	for rows.Next() {
		var location string
		if err := rows.Scan(&location); err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

func collectCafes(rows pgx.Rows) ([]models.Cafe, error) {
	defer rows.Close()

	cafes := []models.Cafe{}
	for rows.Next() {
		var c models.Cafe
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.MapURL,
			&c.ImageURL,
			&c.Location,
			&c.HasSockets,
			&c.HasToilet,
			&c.HasWifi,
			&c.CanTakeCalls,
			&c.Seats,
			&c.CoffeePrice,
			&c.Lat,
			&c.Lng,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan cafe: %w", err)
		}
		cafes = append(cafes, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return cafes, nil
}
