package scoring

// Catalog sizes and point values of the Gemarathon competition.
const (
	TotalSugiot    = 35
	TotalKartisiot = 11

	// PointsPerItem is awarded for every completed sugia or kartisia.
	PointsPerItem = 10

	// BonusForFullClass is added to the class bonus for every catalog
	// item that every student of the class has completed.
	BonusForFullClass = 300
)

type Student struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Grade string  `json:"grade"`
	Score float64 `json:"score"`

	// Completed item numbers, 1-based, deduplicated. Persisted in
	// ascending order; in-memory order carries no meaning.
	SugiotCompleted    []int `json:"sugiotCompleted,omitempty"`
	KartisiotCompleted []int `json:"kartisiotCompleted,omitempty"`
}

// ClassProgress is derived from the current student rows of one class.
// It is recomputed on every read and never persisted.
type ClassProgress struct {
	Grade        string `json:"grade"`
	StudentCount int    `json:"studentCount"`

	// SugiotCounts[i] is the number of students that completed sugia i+1.
	SugiotCounts    []int `json:"sugiotCounts"`
	KartisiotCounts []int `json:"kartisiotCounts"`

	AutoBonus float64 `json:"autoBonus"`
}

type ClassSummary struct {
	Grade        string  `json:"grade"`
	TotalScore   float64 `json:"totalScore"`
	StudentCount int     `json:"studentCount"`
	ClassBonus   float64 `json:"classBonus,omitempty"`
}
