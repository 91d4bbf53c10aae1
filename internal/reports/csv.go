package reports

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-mood-journal/internal/models"
)

// ExportFileName is the file name offered for CSV downloads.
const ExportFileName = "raport_mood.csv"

// CSVFormat selects the export columns.
type CSVFormat int

const (
	// FormatWithIntensity writes Username,Mood,Percentage,Date.
	FormatWithIntensity CSVFormat = iota
	// FormatMoodOnly writes Username,Mood,Date.
	FormatMoodOnly
)

var (
	headerWithIntensity = []string{"Username", "Mood", "Percentage", "Date"}
	headerMoodOnly      = []string{"Username", "Mood", "Date"}
)

// ErrInvalidCSV is returned by ParseCSV for input that was not produced by ToCSV.
var ErrInvalidCSV = errors.New("invalid mood csv")

// ToCSV serializes history with the Percentage column.
func ToCSV(history []models.MoodEntry) ([]byte, error) {
	return ToCSVFormat(history, FormatWithIntensity)
}

// ToCSVFormat serializes history as UTF-8 CSV with a header row.
// A missing intensity is written as an empty cell.
func ToCSVFormat(history []models.MoodEntry, format CSVFormat) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := headerWithIntensity
	if format == FormatMoodOnly {
		header = headerMoodOnly
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, e := range history {
		var record []string
		switch format {
		case FormatMoodOnly:
			record = []string{e.Username, e.Mood, e.DateString()}
		default:
			intensity := ""
			if e.Intensity != nil {
				intensity = strconv.Itoa(*e.Intensity)
			}
			record = []string{e.Username, e.Mood, intensity, e.DateString()}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseCSV reads a history written by ToCSVFormat in either format.
func ParseCSV(data []byte) ([]models.MoodEntry, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidCSV)
	}

	var withIntensity bool
	switch {
	case slices.Equal(records[0], headerWithIntensity):
		withIntensity = true
	case slices.Equal(records[0], headerMoodOnly):
	default:
		return nil, fmt.Errorf("%w: unexpected header %q", ErrInvalidCSV, records[0])
	}

	history := make([]models.MoodEntry, 0, len(records)-1)
	for i, rec := range records[1:] {
		entry, err := parseRecord(rec, withIntensity)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidCSV, i+2, err)
		}
		history = append(history, entry)
	}
	return history, nil
}

func parseRecord(rec []string, withIntensity bool) (models.MoodEntry, error) {
	want := len(headerMoodOnly)
	if withIntensity {
		want = len(headerWithIntensity)
	}
	if len(rec) != want {
		return models.MoodEntry{}, fmt.Errorf("expected %d fields, got %d", want, len(rec))
	}

	entry := models.MoodEntry{Username: rec[0], Mood: rec[1]}
	dateField := rec[2]
	if withIntensity {
		if rec[2] != "" {
			v, err := strconv.Atoi(rec[2])
			if err != nil {
				return models.MoodEntry{}, err
			}
			entry.Intensity = &v
		}
		dateField = rec[3]
	}

	date, err := time.ParseInLocation(models.DateLayout, dateField, time.Local)
	if err != nil {
		return models.MoodEntry{}, err
	}
	entry.Date = date
	return entry, nil
}
