// Package models defines the data shapes exchanged with the DevClimate API.
package models

import "time"

// WeatherRecord is one persisted result of a past city weather lookup.
// Records are immutable once received; deletion is a remote mutation.
//
// The wire format uses the server's field names (note "_id") and an
// ISO-8601 timestamp.
type WeatherRecord struct {
	ID          string  `json:"_id"`
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Timestamp   string  `json:"timestamp"`
}

// Time parses the record timestamp. The zero time is returned if the
// server sent something unparseable.
func (r *WeatherRecord) Time() time.Time {
	t, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HistoryPage is one page of a user's search history. It is recomputed
// wholesale on every fetch; there is no incremental merge.
type HistoryPage struct {
	Records     []WeatherRecord `json:"searches"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
	TotalCount  int             `json:"totalSearches"`
}

// Empty reports whether the page holds no records.
func (p *HistoryPage) Empty() bool {
	return len(p.Records) == 0
}
