package models

// KeywordCounts holds the proof-marker counts for a single scan. Each field
// is the number of lines matching the corresponding marker pattern.
type KeywordCounts struct {
	Admitted int `json:"admitted"`
	Theorems int `json:"theorems"`
	Qed      int `json:"qed"`
}

// Report is the optional JSON artifact written next to the badge.
type Report struct {
	Source    string        `json:"source"`
	Counts    KeywordCounts `json:"counts"`
	Colour    string        `json:"colour"`
	BadgeURL  string        `json:"badge_url,omitempty"`
	Generated string        `json:"generated"`
}
