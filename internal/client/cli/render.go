package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/raghhhava7/devclimate/internal/client/models"
)

// renderPage prints one page of search history.
func renderPage(w io.Writer, page *models.HistoryPage) {
	if page.Empty() {
		fmt.Fprintln(w, "No weather searches yet. Try searching for a city!")
		return
	}

	for _, rec := range page.Records {
		fmt.Fprintf(w, "%-24s %6.1f°C  %3.0f%%  %5.1f km/h  %-20s %s  [%s]\n",
			rec.City,
			rec.Temperature,
			rec.Humidity,
			rec.WindSpeed,
			rec.Description,
			formatTimestamp(rec),
			rec.ID,
		)
	}
	fmt.Fprintf(w, "Page %d of %d (%d searches)\n", page.CurrentPage, page.TotalPages, page.TotalCount)
}

func formatTimestamp(rec models.WeatherRecord) string {
	t := rec.Time()
	if t.IsZero() {
		return rec.Timestamp
	}
	return t.Local().Format(time.DateTime)
}
