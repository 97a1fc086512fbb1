package models

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/dragboard/internal/types"
)

// Status is the column a project currently belongs to
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Statuses returns every status in board order (left to right)
func Statuses() []Status {
	return []Status{StatusActive, StatusCompleted}
}

// ParseStatus converts user input ("active", "Completed", ...) into a Status
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s Status) String() string {
	return string(s)
}

// Title is the column heading for the status, e.g. "Active Projects"
func (s Status) Title() string {
	if s == "" {
		return "Projects"
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:]) + " Projects"
}

// Project is a single card on the board.
// Status is the only field that changes after creation.
type Project struct {
	ID          types.ProjectID
	Title       string
	Description string
	People      int
	Status      Status
}

// PersonsLabel renders the assignment line shown on a card
func (p Project) PersonsLabel() string {
	if p.People == 1 {
		return "1 person assigned."
	}
	return fmt.Sprintf("%d people assigned.", p.People)
}
