// Package reports derives dashboard and report views from a mood history.
// All functions are pure and never modify their input.
package reports

import (
	"math"
	"sort"

	"github.com/sbilibin2017/gw-mood-journal/internal/models"
)

// DashboardSize is the number of entries shown on the dashboard preview.
const DashboardSize = 5

// RecentEntries returns the last n entries of history in their original order.
func RecentEntries(history []models.MoodEntry, n int) []models.MoodEntry {
	if n <= 0 || len(history) == 0 {
		return []models.MoodEntry{}
	}
	if n > len(history) {
		n = len(history)
	}
	out := make([]models.MoodEntry, n)
	copy(out, history[len(history)-n:])
	return out
}

// Average returns the floor of the mean intensity over the entries that carry
// one. ok is false when no entry has an intensity.
func Average(history []models.MoodEntry) (avg int, ok bool) {
	var sum, count int
	for _, e := range history {
		if e.Intensity == nil {
			continue
		}
		sum += *e.Intensity
		count++
	}
	if count == 0 {
		return 0, false
	}
	return int(math.Floor(float64(sum) / float64(count))), true
}

// SortedByDateDescending returns history ordered newest day first.
// Entries recorded on the same day are ordered newest-recorded first.
func SortedByDateDescending(history []models.MoodEntry) []models.MoodEntry {
	out := make([]models.MoodEntry, len(history))
	for i, e := range history {
		out[len(history)-1-i] = e
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
