package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/venue-slot-booking/internal/model"
)

// VenueRepo encapsulates database operations on the venues table.
type VenueRepo struct{ db *sql.DB }

// NewVenueRepo constructs a VenueRepo bound to the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions that
// span multiple repositories.
func (r *VenueRepo) DB() *sql.DB { return r.db }

const venueCols = "id, owner_id, name, address, city, phone, is_active, created_at, updated_at"

func scanVenue(row interface{ Scan(...any) error }) (model.Venue, error) {
	var v model.Venue
	err := row.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Address, &v.City, &v.Phone, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

// Create inserts a venue and populates its ID.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO venues (owner_id, name, address, city, phone, is_active) VALUES (?,?,?,?,?,?)",
		v.OwnerID, v.Name, v.Address, v.City, v.Phone, v.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID fetches a venue by primary key. Returns ErrVenueNotFound when no
// row exists.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (model.Venue, error) {
	v, err := scanVenue(r.db.QueryRowContext(ctx,
		"SELECT "+venueCols+" FROM venues WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.Venue{}, ErrVenueNotFound
	}
	return v, err
}

// GetByIDAndOwner fetches a venue only when it belongs to the given owner.
// Returns ErrVenueNotFound otherwise; ownership failures are not
// distinguished from absence so the API does not leak which venues exist.
func (r *VenueRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (model.Venue, error) {
	v, err := scanVenue(r.db.QueryRowContext(ctx,
		"SELECT "+venueCols+" FROM venues WHERE id=? AND owner_id=? LIMIT 1", id, ownerID))
	if err == sql.ErrNoRows {
		return model.Venue{}, ErrVenueNotFound
	}
	return v, err
}

// ListActive returns all venues visible to the public browse API.
func (r *VenueRepo) ListActive(ctx context.Context) ([]model.Venue, error) {
	return r.list(ctx, "SELECT "+venueCols+" FROM venues WHERE is_active=1 ORDER BY name")
}

// ListByOwner returns every venue, active or not, owned by the user.
func (r *VenueRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Venue, error) {
	return r.list(ctx, "SELECT "+venueCols+" FROM venues WHERE owner_id=? ORDER BY name", ownerID)
}

func (r *VenueRepo) list(ctx context.Context, query string, args ...any) ([]model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Venue, 0, 8)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Update rewrites the mutable venue fields for an owner's venue. Returns
// ErrVenueNotFound when the row does not exist or belongs to someone else.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE venues SET name=?, address=?, city=?, phone=?, is_active=? WHERE id=? AND owner_id=?",
		v.Name, v.Address, v.City, v.Phone, v.IsActive, v.ID, v.OwnerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// RowsAffected is also zero for a no-op update of an owned venue, so
		// confirm the row is really missing before reporting not-found.
		if _, getErr := r.GetByIDAndOwner(ctx, v.ID, v.OwnerID); getErr != nil {
			return getErr
		}
	}
	return nil
}

// Delete removes an owner's venue. Arenas, slot rules and bookings cascade
// at the schema level; the handler is expected to refuse deletion while
// upcoming bookings exist.
func (r *VenueRepo) Delete(ctx context.Context, id, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM venues WHERE id=? AND owner_id=?", id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVenueNotFound
	}
	return nil
}
