package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Projects
	AddProject  string `yaml:"add_project"`
	ViewProject string `yaml:"view_project"`

	// Dragging
	GrabProject string `yaml:"grab_project"`
	DropProject string `yaml:"drop_project"`
	CancelDrag  string `yaml:"cancel_drag"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevColumn  string `yaml:"prev_column"`
	NextColumn  string `yaml:"next_column"`
	PrevProject string `yaml:"prev_project"`
	NextProject string `yaml:"next_project"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddProject:  "a",
		ViewProject: "v",

		GrabProject: "space",
		DropProject: "enter",
		CancelDrag:  "esc",

		SaveForm: "ctrl+s",

		PrevColumn:  "h",
		NextColumn:  "l",
		PrevProject: "k",
		NextProject: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	for _, pair := range []struct {
		dst *string
		def string
	}{
		{&k.AddProject, defaults.AddProject},
		{&k.ViewProject, defaults.ViewProject},
		{&k.GrabProject, defaults.GrabProject},
		{&k.DropProject, defaults.DropProject},
		{&k.CancelDrag, defaults.CancelDrag},
		{&k.SaveForm, defaults.SaveForm},
		{&k.PrevColumn, defaults.PrevColumn},
		{&k.NextColumn, defaults.NextColumn},
		{&k.PrevProject, defaults.PrevProject},
		{&k.NextProject, defaults.NextProject},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.def
		}
	}
}
