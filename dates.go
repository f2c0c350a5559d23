package msqlite

import "time"

// FormatDate formats a calendar value as "2006-01-02". Pure formatting,
// no engine interaction.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatMonth formats a calendar value as "2006-01". Pure formatting,
// no engine interaction.
func FormatMonth(t time.Time) string {
	return t.Format("2006-01")
}
