// Package entities contains domain entities used across the application.
package entities

// FlagRecord is one country's display name and a reference to its flag image.
type FlagRecord struct {
	CountryName  string // common country name, used as the answer
	FlagImageRef string // URL of the flag image (PNG)
}

// Usable reports whether the record can be turned into a question.
func (f FlagRecord) Usable() bool {
	return f.CountryName != "" && f.FlagImageRef != ""
}

// DistinctNames returns the number of distinct country names in records.
func DistinctNames(records []FlagRecord) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.CountryName] = struct{}{}
	}
	return len(seen)
}
