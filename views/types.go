package views

import (
	"encoding/json"
	"time"
)

// Resource shapes returned by the backend's /api endpoints. Decoding happens
// at the boundary in each view; anything that does not fit these shapes
// surfaces as a DecodeError instead of propagating half-populated values.

type Exercise struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

type Lesson struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

type Module struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

type Program struct {
	Modules []Module `json:"modules"`
}

// Assessment questions are stored as free-form JSON server-side; the list
// view only needs their count.
type Assessment struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Questions json.RawMessage `json:"questions"`
}

type AssessmentResult struct {
	ID           int64     `json:"id"`
	AssessmentID int64     `json:"assessment_id"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProgressReport struct {
	CompletionPercentage float64                       `json:"completion_percentage"`
	AssessmentTrends     map[string][]AssessmentResult `json:"assessment_trends"`
}

type Message struct {
	ID          *int64     `json:"id"`
	SenderID    string     `json:"sender_id"`
	RecipientID string     `json:"recipient_id"`
	Content     string     `json:"content"`
	CreatedAt   *time.Time `json:"created_at"`
}

type Asset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type CaseloadParticipant struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}
