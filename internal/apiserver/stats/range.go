package stats

import (
	"fmt"
	"strings"
	"time"
)

// Named date buckets accepted by the fleet range dashboard.
const (
	FilterToday     = "TODAY"
	FilterThisWeek  = "THIS_WEEK"
	FilterLastWeek  = "LAST_WEEK"
	FilterThisMonth = "THIS_MONTH"
	FilterLastMonth = "LAST_MONTH"
)

const dateLayout = "2006-01-02"

// ResolveRange turns a named bucket (matched case-insensitively) or an
// explicit fromDate/toDate pair into a [from, to) interval in loc. Explicit
// dates win over the bucket; with neither, both bounds are nil and the
// caller queries all time.
func ResolveRange(filter, fromDate, toDate string, now time.Time, loc *time.Location) (*time.Time, *time.Time, error) {
	if fromDate != "" || toDate != "" {
		return explicitRange(fromDate, toDate, loc)
	}
	if filter == "" {
		return nil, nil, nil
	}

	local := now.In(loc)
	startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	// weeks start on Sunday
	startOfWeek := startOfDay.AddDate(0, 0, -int(local.Weekday()))
	startOfMonth := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)

	var from, to time.Time
	switch strings.ToUpper(filter) {
	case FilterToday:
		from, to = startOfDay, startOfDay.AddDate(0, 0, 1)
	case FilterThisWeek:
		from, to = startOfWeek, startOfWeek.AddDate(0, 0, 7)
	case FilterLastWeek:
		from, to = startOfWeek.AddDate(0, 0, -7), startOfWeek
	case FilterThisMonth:
		from, to = startOfMonth, startOfMonth.AddDate(0, 1, 0)
	case FilterLastMonth:
		from, to = startOfMonth.AddDate(0, -1, 0), startOfMonth
	default:
		return nil, nil, fmt.Errorf("unknown filter type %q", filter)
	}
	return &from, &to, nil
}

func explicitRange(fromDate, toDate string, loc *time.Location) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fromDate != "" {
		t, err := time.ParseInLocation(dateLayout, fromDate, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid fromDate %q: %w", fromDate, err)
		}
		from = &t
	}
	if toDate != "" {
		t, err := time.ParseInLocation(dateLayout, toDate, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid toDate %q: %w", toDate, err)
		}
		// include the whole end day
		end := t.AddDate(0, 0, 1)
		to = &end
	}
	return from, to, nil
}
