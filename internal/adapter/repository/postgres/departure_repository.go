package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS departures (
	flight_id    UUID PRIMARY KEY,
	name         TEXT NOT NULL,
	flight_type  TEXT NOT NULL DEFAULT '',
	origin       TEXT NOT NULL,
	destination  TEXT NOT NULL,
	arrival      TIMESTAMPTZ,
	departure    TIMESTAMPTZ,
	capacity     INTEGER NOT NULL,
	booked_count INTEGER NOT NULL,
	final_price  NUMERIC(14, 2) NOT NULL,
	occupants    TEXT[] NOT NULL DEFAULT '{}',
	departed_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS departure_seats (
	flight_id      UUID NOT NULL REFERENCES departures (flight_id) ON DELETE CASCADE,
	position       INTEGER NOT NULL,
	status         TEXT NOT NULL,
	occupant_name  TEXT,
	recorded_price NUMERIC(14, 2) NOT NULL,
	booked_at      TIMESTAMPTZ,
	PRIMARY KEY (flight_id, position)
);
`

// DepartureRepository archives departed flights. It implements
// ports.DepartureArchive.
type DepartureRepository struct {
	db *sql.DB
}

func NewDepartureRepository(db *sql.DB) *DepartureRepository {
	return &DepartureRepository{db: db}
}

func (r *DepartureRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create departure tables: %w", err)
	}
	return nil
}

func (r *DepartureRepository) SaveDeparture(ctx context.Context, record domain.DepartureRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryHeader := `
	INSERT INTO departures (flight_id, name, flight_type, origin, destination, arrival, departure, capacity, booked_count, final_price, occupants, departed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = tx.ExecContext(ctx, queryHeader,
		record.FlightID, record.Name, record.Type, record.Origin, record.Destination,
		nullTime(record.Arrival), nullTime(record.Departure),
		record.Capacity, record.BookedCount, record.FinalPrice,
		pq.Array(record.Occupants()), record.DepartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert departure %s: %w", record.Name, err)
	}

	querySeat := `
	INSERT INTO departure_seats (flight_id, position, status, occupant_name, recorded_price, booked_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	stmt, err := tx.PrepareContext(ctx, querySeat)
	if err != nil {
		return fmt.Errorf("failed to prepare seat statement: %w", err)
	}

	defer stmt.Close()

	for _, seat := range record.Seats {
		var occupant sql.NullString
		var bookedAt sql.NullTime

		if seat.Status == domain.SeatBooked {
			occupant = sql.NullString{String: seat.OccupantName, Valid: true}
		}
		if seat.BookedAt != nil {
			bookedAt = sql.NullTime{Time: *seat.BookedAt, Valid: true}
		}

		_, err := stmt.ExecContext(ctx, record.FlightID, seat.Position, seat.Status, occupant, seat.RecordedPrice, bookedAt)
		if err != nil {
			return fmt.Errorf("failed to insert seat %d of %s: %w", seat.Position, record.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CountDepartures reports how many flights the archive holds.
func (r *DepartureRepository) CountDepartures(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM departures`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
