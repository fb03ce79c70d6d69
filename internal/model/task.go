package model

import "time"

// Task is a single to-do item owned by exactly one user. The owner is set at
// creation from the session and never reassigned.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	Title       string    `json:"task" gorm:"column:task;size:250;not null"`
	EndDate     time.Time `json:"end_date" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Tag         Tag       `json:"tag" gorm:"size:50;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DueDateFormat is the wire format for task due dates, e.g. "25-12-2025".
const DueDateFormat = "02-01-2006"

// DueDate renders the end date in the wire format for forms and pages.
// Value receiver so templates can call it while ranging over task slices.
func (t Task) DueDate() string {
	return t.EndDate.Format(DueDateFormat)
}
