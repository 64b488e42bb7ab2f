package domain

// University is static reference data seeded by migration.
type University struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ShortName string  `json:"short_name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Color     Color   `json:"color"`
	State     string  `json:"state"`
}
