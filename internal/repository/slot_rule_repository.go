package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/venue-slot-booking/internal/model"
)

// SlotRuleRepo encapsulates database operations on the slot_rules table.
// Time columns hold zero-padded "HH:MM" strings, which compare correctly
// both in SQL and in Go without parsing.
type SlotRuleRepo struct{ db *sql.DB }

// NewSlotRuleRepo constructs a SlotRuleRepo bound to the given DB handle.
func NewSlotRuleRepo(db *sql.DB) *SlotRuleRepo { return &SlotRuleRepo{db: db} }

const ruleCols = "id, arena_id, day_of_week, start_time, end_time, price_per_hour, is_peak_hour, is_active, created_at, updated_at"

func scanRule(row interface{ Scan(...any) error }) (model.SlotRule, error) {
	var sr model.SlotRule
	err := row.Scan(&sr.ID, &sr.ArenaID, &sr.DayOfWeek, &sr.StartTime, &sr.EndTime,
		&sr.PricePerHour, &sr.IsPeakHour, &sr.IsActive, &sr.CreatedAt, &sr.UpdatedAt)
	return sr, err
}

// Create inserts a slot rule and populates its ID. Validation of the time
// range and overlap against sibling rules happens in the handler before
// this is called.
func (r *SlotRuleRepo) Create(ctx context.Context, sr *model.SlotRule) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO slot_rules (arena_id, day_of_week, start_time, end_time, price_per_hour, is_peak_hour, is_active) VALUES (?,?,?,?,?,?,?)",
		sr.ArenaID, sr.DayOfWeek, sr.StartTime, sr.EndTime, sr.PricePerHour, sr.IsPeakHour, sr.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	sr.ID = uint64(id)
	return nil
}

// GetByIDAndOwner fetches a rule only when its arena's venue belongs to
// the given owner.
func (r *SlotRuleRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (model.SlotRule, error) {
	sr, err := scanRule(r.db.QueryRowContext(ctx,
		`SELECT sr.id, sr.arena_id, sr.day_of_week, sr.start_time, sr.end_time,
		        sr.price_per_hour, sr.is_peak_hour, sr.is_active, sr.created_at, sr.updated_at
		   FROM slot_rules sr
		   JOIN arenas a ON a.id = sr.arena_id
		   JOIN venues v ON v.id = a.venue_id
		  WHERE sr.id=? AND v.owner_id=? LIMIT 1`, id, ownerID))
	if err == sql.ErrNoRows {
		return model.SlotRule{}, ErrSlotRuleNotFound
	}
	return sr, err
}

// ListByArena returns every rule for an arena ordered by day then start
// time, for the owner management screens.
func (r *SlotRuleRepo) ListByArena(ctx context.Context, arenaID uint64) ([]model.SlotRule, error) {
	return r.list(ctx,
		"SELECT "+ruleCols+" FROM slot_rules WHERE arena_id=? ORDER BY day_of_week, start_time", arenaID)
}

// ListActiveByArena returns the active rules for an arena. The availability
// path fetches all days at once and lets the slot engine pick the matching
// weekday, keeping day resolution in exactly one place.
func (r *SlotRuleRepo) ListActiveByArena(ctx context.Context, arenaID uint64) ([]model.SlotRule, error) {
	return r.list(ctx,
		"SELECT "+ruleCols+" FROM slot_rules WHERE arena_id=? AND is_active=1 ORDER BY day_of_week, start_time", arenaID)
}

func (r *SlotRuleRepo) list(ctx context.Context, query string, args ...any) ([]model.SlotRule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.SlotRule, 0, 8)
	for rows.Next() {
		sr, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// FindOverlapping returns active sibling rules on the same arena and day
// whose [start,end) range overlaps the given one. excludeID skips the rule
// being updated. Overlapping rules are rejected at data entry so the
// generated slot list can never offer the same start time from two rules.
func (r *SlotRuleRepo) FindOverlapping(ctx context.Context, arenaID uint64, dayOfWeek int, startTime, endTime string, excludeID uint64) ([]model.SlotRule, error) {
	return r.list(ctx,
		`SELECT `+ruleCols+` FROM slot_rules
		  WHERE arena_id=? AND day_of_week=? AND is_active=1 AND id<>?
		    AND start_time < ? AND end_time > ?
		  ORDER BY start_time`,
		arenaID, dayOfWeek, excludeID, endTime, startTime)
}

// Update rewrites a rule's mutable fields, enforcing ownership through the
// arena/venue join.
func (r *SlotRuleRepo) Update(ctx context.Context, sr *model.SlotRule, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE slot_rules sr
		   JOIN arenas a ON a.id = sr.arena_id
		   JOIN venues v ON v.id = a.venue_id
		    SET sr.day_of_week=?, sr.start_time=?, sr.end_time=?, sr.price_per_hour=?, sr.is_peak_hour=?, sr.is_active=?
		  WHERE sr.id=? AND v.owner_id=?`,
		sr.DayOfWeek, sr.StartTime, sr.EndTime, sr.PricePerHour, sr.IsPeakHour, sr.IsActive, sr.ID, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, getErr := r.GetByIDAndOwner(ctx, sr.ID, ownerID); getErr != nil {
			return getErr
		}
	}
	return nil
}

// Delete removes an owner's slot rule.
func (r *SlotRuleRepo) Delete(ctx context.Context, id, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE sr FROM slot_rules sr
		   JOIN arenas a ON a.id = sr.arena_id
		   JOIN venues v ON v.id = a.venue_id
		  WHERE sr.id=? AND v.owner_id=?`, id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSlotRuleNotFound
	}
	return nil
}
