package booking

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"roombook/models"
)

const startLayout = "2006-01-02T15:04"

// SortChronological returns a copy ordered newest first by date and start time.
// Bookings whose date or start time do not parse go last.
func SortChronological(bookings []models.Booking) []models.Booking {
	type keyed struct {
		b  models.Booking
		at time.Time
		ok bool
	}

	items := make([]keyed, len(bookings))
	for i, b := range bookings {
		at, err := time.Parse(startLayout, b.Date+"T"+b.StartTime)
		items[i] = keyed{b: b, at: at, ok: err == nil}
	}

	slices.SortStableFunc(items, func(x, y keyed) int {
		switch {
		case x.ok && !y.ok:
			return -1
		case !x.ok && y.ok:
			return 1
		case !x.ok && !y.ok:
			return 0
		}
		return y.at.Compare(x.at)
	})

	out := make([]models.Booking, len(items))
	for i, it := range items {
		out[i] = it.b
	}
	return out
}

// HourlyHistogram counts bookings per start hour, ascending by hour.
func HourlyHistogram(bookings []models.Booking) []models.HourlyLoad {
	counts := make(map[int]int)
	for _, b := range bookings {
		hourPart, _, _ := strings.Cut(b.StartTime, ":")
		hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
		if err != nil {
			continue
		}
		counts[hour]++
	}

	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	slices.Sort(hours)

	out := make([]models.HourlyLoad, 0, len(hours))
	for _, h := range hours {
		out = append(out, models.HourlyLoad{
			Hour:  h,
			Name:  strconv.Itoa(h) + ":00",
			Count: counts[h],
		})
	}
	return out
}
