package dosdate

import "fmt"

// Result is a decoded date together with its display form.
type Result struct {
	Components DateComponents `json:"dos_date_components" yaml:"dos_date_components"`
	Formatted  string         `json:"formatted_date" yaml:"formatted_date"`
}

// Format renders the components as YYYY-MM-DD. The year is not padded.
// The components are expected to come from Decode and are not validated again.
func Format(c DateComponents) Result {
	return Result{
		Components: c,
		Formatted:  formatDate(c),
	}
}

func formatDate(c DateComponents) string {
	return fmt.Sprintf("%d-%02d-%02d", c.Year, c.Month, c.Day)
}
