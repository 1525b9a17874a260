package models

import "time"

// Seeded lifecycle state IDs. The seeder guarantees these rows exist with
// exactly these primary keys.
const (
	StateActive    uint = 1
	StateInactive  uint = 2
	StateCancelled uint = 3
	StatePending   uint = 4
	StateFinished  uint = 5
)

// State is the shared lifecycle lookup referenced by courses and cycles.
// Rows are seeded once and never modified afterwards.
type State struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:50;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Course is a catalog entry describing an offered training program. It
// carries no dates or pricing; those live on its cycles.
type Course struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Name           string     `json:"name" gorm:"not null;index"`
	Description    string     `json:"description"`
	TargetAudience string     `json:"target_audience"`
	DailyHours     float64    `json:"daily_hours"`
	Schedule       string     `json:"schedule"`
	Frequency      string     `json:"frequency"`
	StateID        uint       `json:"state_id" gorm:"index;default:1"`
	State          *State     `json:"state,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	EditedAt       time.Time  `json:"edited_at" gorm:"autoUpdateTime"`
	CancelledAt    *time.Time `json:"cancelled_at"`
	Cycles         []Cycle    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Cycle is a concrete scheduled offering of a course, with dates and
// pricing. Soft delete marks it cancelled; the row is never removed through
// the API.
type Cycle struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	CourseID       uint       `json:"course_id" gorm:"not null;index"`
	Course         *Course    `json:"course,omitempty"`
	Name           string     `json:"name" gorm:"not null"`
	RegularPrice   float64    `json:"regular_price"`
	PromoPrice     float64    `json:"promo_price"`
	ClassStartDate *time.Time `json:"class_start_date" gorm:"index:idx_cycles_class_dates"`
	ClassEndDate   *time.Time `json:"class_end_date" gorm:"index:idx_cycles_class_dates"`
	TotalDuration  string     `json:"total_duration"`
	StateID        uint       `json:"state_id" gorm:"index;default:1"`
	State          *State     `json:"state,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	EditedAt       time.Time  `json:"edited_at" gorm:"autoUpdateTime"`
	CancelledAt    *time.Time `json:"cancelled_at"`
}
