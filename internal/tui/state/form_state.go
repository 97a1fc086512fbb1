package state

import "charm.land/huh/v2"

// FormState holds the new project form and the values its fields write to.
type FormState struct {
	ProjectForm *huh.Form

	FormTitle       string
	FormDescription string
	FormPeople      string
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// HasChanges reports whether any field has been filled in.
func (s *FormState) HasChanges() bool {
	return s.FormTitle != "" || s.FormDescription != "" || s.FormPeople != ""
}

// Clear drops the form and empties its fields.
func (s *FormState) Clear() {
	s.ProjectForm = nil
	s.FormTitle = ""
	s.FormDescription = ""
	s.FormPeople = ""
}
