// Package backup serializes the full calendar state to a versioned file and
// restores it from one, sanitizing whatever the file claims on the way in.
package backup

// SnapshotVersion marks the export file format. Importers accept any file
// with a valid entries mapping regardless of the declared version.
const SnapshotVersion = "2.0"

type GoalSnapshot struct {
	Hours    float64 `json:"hours"`
	Earnings float64 `json:"earnings"`
}

type GoalsSnapshot struct {
	Monthly map[string]GoalSnapshot `json:"monthly"`
	Yearly  GoalSnapshot            `json:"yearly"`
}

// Snapshot is the exported state of a tracked year.
type Snapshot struct {
	Version    string             `json:"version"`
	ExportDate string             `json:"exportDate"`
	HourlyRate float64            `json:"hourlyRate"`
	Entries    map[string]float64 `json:"entries"`
	Notes      map[string]string  `json:"notes"`
	Goals      GoalsSnapshot      `json:"goals"`
}
