package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/venue-slot-booking/internal/model"
)

// ArenaRepo encapsulates database operations on the arenas table.
type ArenaRepo struct{ db *sql.DB }

// NewArenaRepo constructs an ArenaRepo bound to the given DB handle.
func NewArenaRepo(db *sql.DB) *ArenaRepo { return &ArenaRepo{db: db} }

const arenaCols = "id, venue_id, name, sport, description, is_active, created_at, updated_at"

func scanArena(row interface{ Scan(...any) error }) (model.Arena, error) {
	var (
		a    model.Arena
		desc sql.NullString
	)
	err := row.Scan(&a.ID, &a.VenueID, &a.Name, &a.Sport, &desc, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if desc.Valid {
		a.Description = &desc.String
	}
	return a, err
}

// Create inserts an arena and populates its ID.
func (r *ArenaRepo) Create(ctx context.Context, a *model.Arena) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO arenas (venue_id, name, sport, description, is_active) VALUES (?,?,?,?,?)",
		a.VenueID, a.Name, a.Sport, a.Description, a.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID fetches an arena by primary key.
func (r *ArenaRepo) GetByID(ctx context.Context, id uint64) (model.Arena, error) {
	a, err := scanArena(r.db.QueryRowContext(ctx,
		"SELECT "+arenaCols+" FROM arenas WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.Arena{}, ErrArenaNotFound
	}
	return a, err
}

// GetByIDAndOwner fetches an arena only when its venue belongs to the given
// owner, joining through venues to enforce ownership in one query.
func (r *ArenaRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (model.Arena, error) {
	a, err := scanArena(r.db.QueryRowContext(ctx,
		`SELECT a.id, a.venue_id, a.name, a.sport, a.description, a.is_active, a.created_at, a.updated_at
		   FROM arenas a JOIN venues v ON v.id = a.venue_id
		  WHERE a.id=? AND v.owner_id=? LIMIT 1`, id, ownerID))
	if err == sql.ErrNoRows {
		return model.Arena{}, ErrArenaNotFound
	}
	return a, err
}

// ListByVenue returns the arenas of a venue. When activeOnly is set,
// inactive arenas are filtered out (the public browse path).
func (r *ArenaRepo) ListByVenue(ctx context.Context, venueID uint64, activeOnly bool) ([]model.Arena, error) {
	query := "SELECT " + arenaCols + " FROM arenas WHERE venue_id=?"
	if activeOnly {
		query += " AND is_active=1"
	}
	query += " ORDER BY name"
	rows, err := r.db.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Arena, 0, 4)
	for rows.Next() {
		a, err := scanArena(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update rewrites the mutable arena fields, enforcing venue ownership via
// the join. Returns ErrArenaNotFound when nothing matches.
func (r *ArenaRepo) Update(ctx context.Context, a *model.Arena, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE arenas a JOIN venues v ON v.id = a.venue_id
		    SET a.name=?, a.sport=?, a.description=?, a.is_active=?
		  WHERE a.id=? AND v.owner_id=?`,
		a.Name, a.Sport, a.Description, a.IsActive, a.ID, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, getErr := r.GetByIDAndOwner(ctx, a.ID, ownerID); getErr != nil {
			return getErr
		}
	}
	return nil
}

// Delete removes an owner's arena. The handler refuses deletion while
// non-cancelled future bookings exist, returning ErrConflict upstream.
func (r *ArenaRepo) Delete(ctx context.Context, id, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE a FROM arenas a JOIN venues v ON v.id = a.venue_id
		  WHERE a.id=? AND v.owner_id=?`, id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrArenaNotFound
	}
	return nil
}

// CountUpcomingBookings reports how many non-cancelled bookings exist for
// the arena today or later. Used to guard destructive owner operations.
func (r *ArenaRepo) CountUpcomingBookings(ctx context.Context, arenaID uint64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings
		  WHERE arena_id=? AND status<>'CANCELLED' AND booking_date >= CURDATE()`,
		arenaID).Scan(&n)
	return n, err
}
