package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/venue-slot-booking/internal/model"
)

// BookingRepo encapsulates database operations on the bookings table. It
// owns the authoritative conflict check: the slot engine validates against
// a snapshot fetched at selection time, which can race a concurrent
// booking, so CreateTx re-runs the overlap test inside the insert
// transaction with the competing rows locked.
type BookingRepo struct{ db *sql.DB }

// NewBookingRepo constructs a BookingRepo bound to the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle for transaction management.
func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingCols = "id, reference, user_id, arena_id, booking_date, start_time, end_time, status, total_amount, player_name, player_phone, notes, created_at, updated_at"

func scanBooking(row interface{ Scan(...any) error }) (model.Booking, error) {
	var (
		b     model.Booking
		notes sql.NullString
	)
	err := row.Scan(&b.ID, &b.Reference, &b.UserID, &b.ArenaID, &b.BookingDate,
		&b.StartTime, &b.EndTime, &b.Status, &b.TotalAmount,
		&b.PlayerName, &b.PlayerPhone, &notes, &b.CreatedAt, &b.UpdatedAt)
	if notes.Valid {
		b.Notes = &notes.String
	}
	return b, err
}

// dateStr formats a calendar date for the DATE column.
func dateStr(d time.Time) string { return d.Format("2006-01-02") }

// utcToday returns the current calendar date in UTC. All date comparisons go
// through this instead of MySQL's CURDATE(), which evaluates in the DB
// session's timezone and can disagree with the app's UTC clock near midnight.
func utcToday() string { return dateStr(time.Now().UTC()) }

// ListByArenaDate returns all bookings for an arena on one calendar date,
// in start-time order. Cancelled rows are included; the slot engine skips
// them itself, and owner screens want to see them.
func (r *BookingRepo) ListByArenaDate(ctx context.Context, arenaID uint64, date time.Time) ([]model.Booking, error) {
	return r.list(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE arena_id=? AND booking_date=? ORDER BY start_time",
		arenaID, dateStr(date))
}

// CreateTx inserts a booking inside the given transaction after re-checking
// for an overlapping non-cancelled booking. The SELECT ... FOR UPDATE locks
// the competing rows so two concurrent submissions for the same range
// serialize; the loser sees the winner's row and gets ErrSlotTaken. The
// caller owns commit/rollback.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	var clashes int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings
		  WHERE arena_id=? AND booking_date=? AND status<>'CANCELLED'
		    AND start_time < ? AND end_time > ?
		  FOR UPDATE`,
		b.ArenaID, dateStr(b.BookingDate), b.EndTime, b.StartTime).Scan(&clashes)
	if err != nil {
		return err
	}
	if clashes > 0 {
		return ErrSlotTaken
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings
		  (reference, user_id, arena_id, booking_date, start_time, end_time, status, total_amount, player_name, player_phone, notes)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		b.Reference, b.UserID, b.ArenaID, dateStr(b.BookingDate), b.StartTime, b.EndTime,
		b.Status, b.TotalAmount, b.PlayerName, b.PlayerPhone, b.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByIDForUser returns a booking owned by the given player. Absence and
// foreign ownership both surface as sql.ErrNoRows.
func (r *BookingRepo) GetByIDForUser(ctx context.Context, id, userID uint64) (model.Booking, error) {
	return scanBooking(r.db.QueryRowContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE id=? AND user_id=? LIMIT 1", id, userID))
}

// ListByUser returns a player's bookings, most recent date first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	return r.list(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE user_id=? ORDER BY booking_date DESC, start_time",
		userID)
}

// ListByArenaForOwner returns bookings on an arena whose venue the owner
// controls, optionally restricted to one date. Ownership is enforced in
// the join; ErrArenaNotFound is returned when the arena is not theirs.
func (r *BookingRepo) ListByArenaForOwner(ctx context.Context, arenaID, ownerID uint64, date *time.Time) ([]model.Booking, error) {
	var owned int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM arenas a JOIN venues v ON v.id=a.venue_id WHERE a.id=? AND v.owner_id=?`,
		arenaID, ownerID).Scan(&owned)
	if err != nil {
		return nil, err
	}
	if owned == 0 {
		return nil, ErrArenaNotFound
	}
	if date != nil {
		return r.list(ctx,
			"SELECT "+bookingCols+" FROM bookings WHERE arena_id=? AND booking_date=? ORDER BY start_time",
			arenaID, dateStr(*date))
	}
	return r.list(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE arena_id=? ORDER BY booking_date DESC, start_time",
		arenaID)
}

// CancelForUser marks a player's own booking CANCELLED. Past bookings
// cannot be cancelled; attempting to do so returns ErrConflict. A booking
// that does not exist or belongs to someone else returns ErrBookingNotFound.
func (r *BookingRepo) CancelForUser(ctx context.Context, id, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status='CANCELLED'
		  WHERE id=? AND user_id=? AND status<>'CANCELLED' AND booking_date >= ?`,
		id, userID, utcToday())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		b, getErr := r.GetByIDForUser(ctx, id, userID)
		if getErr == sql.ErrNoRows {
			return ErrBookingNotFound
		}
		if getErr != nil {
			return getErr
		}
		if b.Status == "CANCELLED" {
			return nil // already cancelled, idempotent
		}
		return ErrConflict
	}
	return nil
}

func (r *BookingRepo) list(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Booking, 0, 8)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
