package model

// VisitHistory is a past visit summary. Seeded once, read-only: the API
// exposes no creation path.
type VisitHistory struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Date    string `json:"date"`
	Service string `json:"service"`
	Doctor  string `json:"doctor"`
	Summary string `json:"summary"`
}
