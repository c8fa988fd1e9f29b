package report

import (
	"slices"
	"time"
)

// CivilDate truncates t to midnight UTC of its own calendar day.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// hasRange reports whether both explicit bounds are present.
func (c Criteria) hasRange() bool {
	return c.StartDate != nil && c.EndDate != nil
}

// monthly reports whether a complete monthly period was requested.
func (c Criteria) monthly() bool {
	return c.Period == PeriodMonthly && c.Year != 0 && c.Month >= 1 && c.Month <= 12
}

// annual reports whether a complete annual period was requested.
func (c Criteria) annual() bool {
	return c.Period == PeriodAnnual && c.Year != 0
}

// Matches reports whether r satisfies every predicate set on c.
// A period without its required year/month is ignored.
func (c Criteria) Matches(r Record) bool {
	if c.BrokerID != "" && r.BrokerID != c.BrokerID {
		return false
	}
	if c.AssetID != "" && r.AssetID != c.AssetID {
		return false
	}
	if c.Operation != nil && r.Operation != *c.Operation {
		return false
	}

	d := CivilDate(r.Date)
	if c.hasRange() {
		if d.Before(CivilDate(*c.StartDate)) || d.After(CivilDate(*c.EndDate)) {
			return false
		}
	}
	if c.monthly() && (d.Year() != c.Year || int(d.Month()) != c.Month) {
		return false
	}
	if c.annual() && d.Year() != c.Year {
		return false
	}
	return true
}

// Window returns the tightest inclusive date window implied by the range and
// period predicates. ok is false when neither constrains the date. An empty
// window (from after to) is possible when range and period do not overlap.
func (c Criteria) Window() (from, to time.Time, ok bool) {
	if c.hasRange() {
		from, to, ok = CivilDate(*c.StartDate), CivilDate(*c.EndDate), true
	}

	var pFrom, pTo time.Time
	switch {
	case c.monthly():
		pFrom = time.Date(c.Year, time.Month(c.Month), 1, 0, 0, 0, 0, time.UTC)
		pTo = pFrom.AddDate(0, 1, -1)
	case c.annual():
		pFrom = time.Date(c.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		pTo = time.Date(c.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		return from, to, ok
	}

	if !ok {
		return pFrom, pTo, true
	}
	if pFrom.After(from) {
		from = pFrom
	}
	if pTo.Before(to) {
		to = pTo
	}
	return from, to, true
}

// Filter returns the records matching c, newest first. Records sharing a date
// keep their input order. The input slice is not modified.
func Filter(records []Record, c Criteria) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b Record) int {
		return CivilDate(b.Date).Compare(CivilDate(a.Date))
	})
	return out
}
