package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTitleLength is the maximum number of characters in a task title.
const MaxTitleLength = 255

// Task is a single entry on the task list.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTask creates a new Task with a fresh ID and creation timestamp.
// The title is trimmed before validation. CreatedAt is truncated to
// microseconds, the resolution of the database column.
func NewTask(title string, completed bool) (*Task, error) {
	task := &Task{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(title),
		Completed: completed,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if err := validateTitle(t.Title); err != nil {
		return err
	}
	if t.CreatedAt.IsZero() {
		return NewValidationError("created_at", "cannot be empty", ErrValidation)
	}
	return nil
}

// Apply copies the fields set in p onto the task. ID and CreatedAt are
// never touched. The patch is expected to be normalized and validated.
func (t *Task) Apply(p TaskPatch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// TaskPatch holds the mutable task fields of an update request.
// A nil field is left unchanged.
type TaskPatch struct {
	Title     *string
	Completed *bool
}

// Normalize returns a copy of the patch with the title trimmed.
func (p TaskPatch) Normalize() TaskPatch {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		p.Title = &title
	}
	return p
}

// Validate checks the fields that are present in the patch.
func (p TaskPatch) Validate() error {
	if p.Title != nil {
		return validateTitle(*p.Title)
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}

func validateTitle(title string) error {
	if title == "" {
		return NewValidationError("title", "may not be blank", ErrEmptyTitle)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewValidationError("title", "must be at most 255 characters", ErrTitleTooLong)
	}
	return nil
}
