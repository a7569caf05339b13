package instructors

import "time"

// TraineeLink is one active instructor-to-trainee link, as seen from
// the instructor side.
type TraineeLink struct {
	LinkID          int       `json:"link_id"`
	TraineeID       int       `json:"trainee_id"`
	TraineeUsername string    `json:"trainee_username"`
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// InstructorLink is the same link as seen from the trainee side.
type InstructorLink struct {
	LinkID             int       `json:"link_id"`
	InstructorID       int       `json:"instructor_id"`
	InstructorUsername string    `json:"instructor_username"`
	CreatedAt          time.Time `json:"created_at"`
	ExpiresAt          time.Time `json:"expires_at"`
}
