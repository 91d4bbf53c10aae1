package models

import "time"

// DateLayout is the storage and export format of MoodEntry.Date.
const DateLayout = "2006-01-02"

// Preset mood labels offered to the user interface.
const (
	MoodHappy    = "Fericit 😊"
	MoodCalm     = "Calm 😌"
	MoodSad      = "Trist 😢"
	MoodStressed = "Stresat 😰"
	MoodTired    = "Obosit 😴"
)

// MoodOptions returns the preset mood labels in display order.
func MoodOptions() []string {
	return []string{MoodHappy, MoodCalm, MoodSad, MoodStressed, MoodTired}
}

// MoodEntry is one recorded mood observation.
// Intensity is nil when the entry was recorded without a percentage.
type MoodEntry struct {
	Username  string    `json:"username"`
	Mood      string    `json:"mood"`
	Intensity *int      `json:"intensity,omitempty"`
	Date      time.Time `json:"date"`
}

// DateString returns the calendar day of the entry as YYYY-MM-DD.
func (e MoodEntry) DateString() string {
	return e.Date.Format(DateLayout)
}

// MoodDB represents a row of the moods table.
type MoodDB struct {
	ID        int64  `db:"id"`
	Username  string `db:"username"`
	Mood      string `db:"mood"`
	Intensity *int   `db:"intensity"`
	Date      string `db:"date"`
}

// Entry converts the row into a MoodEntry. Dates are parsed in server-local time.
func (m MoodDB) Entry() (MoodEntry, error) {
	date, err := time.ParseInLocation(DateLayout, m.Date, time.Local)
	if err != nil {
		return MoodEntry{}, err
	}
	return MoodEntry{
		Username:  m.Username,
		Mood:      m.Mood,
		Intensity: m.Intensity,
		Date:      date,
	}, nil
}

// Today truncates t to its calendar day in server-local time.
func Today(t time.Time) time.Time {
	y, mo, d := t.In(time.Local).Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.Local)
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
