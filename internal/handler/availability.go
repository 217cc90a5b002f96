package handler

import (
	"context"
	"log"
	"time"

	"github.com/iliyamo/venue-slot-booking/internal/model"
	"github.com/iliyamo/venue-slot-booking/internal/repository"
	"github.com/iliyamo/venue-slot-booking/internal/slotengine"
)

// generateArenaSlots fetches the arena's active slot rules and the date's
// bookings, then runs the slot engine over them. It is shared by the public
// availability endpoint and the booking submission path so both always
// operate on a freshly fetched snapshot. Rules with malformed time ranges
// are logged and skipped, never fatal.
func generateArenaSlots(ctx context.Context, ruleRepo *repository.SlotRuleRepo, bookingRepo *repository.BookingRepo, arenaID uint64, date time.Time, unitMinutes int, window *slotengine.TimeWindow) ([]slotengine.AtomicSlot, error) {
	rules, err := ruleRepo.ListActiveByArena(ctx, arenaID)
	if err != nil {
		return nil, err
	}
	bookings, err := bookingRepo.ListByArenaDate(ctx, arenaID, date)
	if err != nil {
		return nil, err
	}
	slots, skipped, err := slotengine.GenerateSlots(toEngineRules(rules), date, toEngineBookings(bookings), unitMinutes, window)
	if err != nil {
		return nil, err
	}
	for _, m := range skipped {
		log.Printf("availability: arena %d: %v", arenaID, m)
	}
	return slots, nil
}

func toEngineRules(rules []model.SlotRule) []slotengine.WeeklySlotRule {
	out := make([]slotengine.WeeklySlotRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, slotengine.WeeklySlotRule{
			ID:           r.ID,
			DayOfWeek:    r.DayOfWeek,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			PricePerHour: r.PricePerHour,
			IsPeakHour:   r.IsPeakHour,
			IsActive:     r.IsActive,
		})
	}
	return out
}

func toEngineBookings(bookings []model.Booking) []slotengine.ExistingBooking {
	out := make([]slotengine.ExistingBooking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, slotengine.ExistingBooking{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
		})
	}
	return out
}
