package domain

import "time"

// DateRange is a stay interval at day granularity. Start is the arrival
// day, End the departure day; Start < End always holds for stored ranges.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two stays conflict under the arrival/departure
// rule: the departure day of one stay may be the arrival day of the other
// (same-day turnover), anything else overlapping the open intervals is a
// conflict.
func (r DateRange) Overlaps(other DateRange) bool {
	if sameDay(r.End, other.Start) || sameDay(other.End, r.Start) {
		return false
	}
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Nights returns the number of nights between arrival and departure.
func (r DateRange) Nights() int {
	return int(normalizeDay(r.End).Sub(normalizeDay(r.Start)).Hours() / 24)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func normalizeDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeDay truncates t to midnight UTC, the canonical form for all
// stored reservation dates.
func NormalizeDay(t time.Time) time.Time {
	return normalizeDay(t)
}
