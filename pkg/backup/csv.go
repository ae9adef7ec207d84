package backup

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RenderCSV renders the snapshot's entries as CSV, one row per entry in
// ascending date order. The earnings column is labeled with the configured
// currency. The notes field is always wrapped in double quotes with embedded
// quotes doubled, which is why this does not go through encoding/csv: that
// writer only quotes fields that need it.
func RenderCSV(snapshot Snapshot, currency string) []byte {
	dates := make([]string, 0, len(snapshot.Entries))
	for date := range snapshot.Entries {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var out strings.Builder
	out.WriteString(fmt.Sprintf("Date,Hours,Earnings (%s),Notes", currency))
	out.WriteString("\n")
	for _, date := range dates {
		hours := snapshot.Entries[date]
		earnings := hours * snapshot.HourlyRate
		out.WriteString(date)
		out.WriteString(",")
		out.WriteString(strconv.FormatFloat(hours, 'f', -1, 64))
		out.WriteString(",")
		out.WriteString(fmt.Sprintf("%.2f", earnings))
		out.WriteString(",")
		out.WriteString(quoteNote(snapshot.Notes[date]))
		out.WriteString("\n")
	}
	return []byte(out.String())
}

func quoteNote(text string) string {
	return `"` + strings.ReplaceAll(text, `"`, `""`) + `"`
}
