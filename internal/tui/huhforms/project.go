package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/dragboard/internal/validation"
)

// CreateProjectForm creates a huh form for adding a new project.
// Each field checks its own rules as the user moves through the form.
func CreateProjectForm(
	title *string,
	description *string,
	people *string,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter project title...").
			Value(title).
			Validate(validation.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("At least 10 characters...").
			CharLimit(validation.DescriptionMaxLength).
			Lines(3).
			Value(description).
			Validate(validation.Description),

		huh.NewInput().
			Key("people").
			Title("People").
			Placeholder("1-10").
			CharLimit(2).
			Value(people).
			Validate(validation.People),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(ProjectFormKeyMap())
}
