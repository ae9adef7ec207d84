package entry

// SearchResult is a single day matched by a search query, carrying whatever
// the day has: logged hours, a note, or both.
type SearchResult struct {
	Date  string
	Hours float64
	Note  string
}
