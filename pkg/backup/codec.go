package backup

import (
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/workcal/workcal/pkg/datekey"
)

// ErrInvalidJSON means the import file is not well-formed JSON at all.
var ErrInvalidJSON = errors.New("backup file is not valid JSON")

// ErrMissingEntries means the file parsed but carries no entries mapping.
var ErrMissingEntries = errors.New("backup file has no entries object")

// Decode parses raw import bytes into a sanitized Snapshot. It is a pure
// transform: malformed keys and wrong-typed values are dropped silently,
// and nothing is applied to any store. Only a missing or non-mapping
// entries field is an error.
func Decode(raw []byte) (Snapshot, error) {
	var doc struct {
		HourlyRate json.RawMessage `json:"hourlyRate"`
		Entries    json.RawMessage `json:"entries"`
		Notes      json.RawMessage `json:"notes"`
		Goals      json.RawMessage `json:"goals"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		if !json.Valid(raw) {
			return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		// Well-formed but not an object, so there is no entries field.
		return Snapshot{}, ErrMissingEntries
	}

	entries, err := sanitizeEntries(doc.Entries)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Version:    SnapshotVersion,
		HourlyRate: decodeNumber(doc.HourlyRate),
		Entries:    entries,
		Notes:      sanitizeNotes(doc.Notes),
		Goals:      sanitizeGoals(doc.Goals),
	}, nil
}

func sanitizeEntries(raw json.RawMessage) (map[string]float64, error) {
	var candidates map[string]json.RawMessage
	if raw == nil || json.Unmarshal(raw, &candidates) != nil || candidates == nil {
		return nil, ErrMissingEntries
	}
	entries := make(map[string]float64)
	for key, value := range candidates {
		if !datekey.IsCalendarKey(key) {
			log.Debugf("dropping entry with malformed date key %q", key)
			continue
		}
		var hours float64
		if err := json.Unmarshal(value, &hours); err != nil {
			log.Debugf("dropping entry %s with non-numeric hours", key)
			continue
		}
		entries[key] = hours
	}
	return entries, nil
}

func sanitizeNotes(raw json.RawMessage) map[string]string {
	notes := make(map[string]string)
	var candidates map[string]json.RawMessage
	if raw == nil || json.Unmarshal(raw, &candidates) != nil {
		return notes
	}
	for key, value := range candidates {
		if !datekey.IsCalendarKey(key) {
			continue
		}
		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			continue
		}
		notes[key] = text
	}
	return notes
}

// sanitizeGoals is intentionally shallow: monthly is taken wholesale when it
// decodes as a mapping of goal objects, and the yearly fields are checked
// for being numbers, nothing more.
func sanitizeGoals(raw json.RawMessage) GoalsSnapshot {
	goals := GoalsSnapshot{Monthly: map[string]GoalSnapshot{}}
	var doc struct {
		Monthly json.RawMessage `json:"monthly"`
		Yearly  json.RawMessage `json:"yearly"`
	}
	if raw == nil || json.Unmarshal(raw, &doc) != nil {
		return goals
	}
	var monthly map[string]GoalSnapshot
	if doc.Monthly != nil && json.Unmarshal(doc.Monthly, &monthly) == nil && monthly != nil {
		goals.Monthly = monthly
	}
	var yearly struct {
		Hours    json.RawMessage `json:"hours"`
		Earnings json.RawMessage `json:"earnings"`
	}
	if doc.Yearly != nil && json.Unmarshal(doc.Yearly, &yearly) == nil {
		goals.Yearly.Hours = decodeNumber(yearly.Hours)
		goals.Yearly.Earnings = decodeNumber(yearly.Earnings)
	}
	return goals
}

func decodeNumber(raw json.RawMessage) float64 {
	var value float64
	if raw == nil || json.Unmarshal(raw, &value) != nil {
		return 0
	}
	return value
}
