package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/dragboard/internal/config"
)

// keyMap holds the bindings built from the user's key mappings
type keyMap struct {
	AddProject  key.Binding
	ViewProject key.Binding
	GrabProject key.Binding
	DropProject key.Binding
	CancelDrag  key.Binding
	SaveForm    key.Binding
	PrevColumn  key.Binding
	NextColumn  key.Binding
	PrevProject key.Binding
	NextProject key.Binding
	ShowHelp    key.Binding
	Quit        key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		AddProject:  key.NewBinding(key.WithKeys(km.AddProject), key.WithHelp(km.AddProject, "add project")),
		ViewProject: key.NewBinding(key.WithKeys(km.ViewProject), key.WithHelp(km.ViewProject, "view project")),
		GrabProject: key.NewBinding(key.WithKeys(km.GrabProject), key.WithHelp(km.GrabProject, "grab / drop project")),
		DropProject: key.NewBinding(key.WithKeys(km.DropProject), key.WithHelp(km.DropProject, "drop project")),
		CancelDrag:  key.NewBinding(key.WithKeys(km.CancelDrag), key.WithHelp(km.CancelDrag, "cancel drag")),
		SaveForm:    key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save form")),
		PrevColumn:  key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "previous column")),
		NextColumn:  key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		PrevProject: key.NewBinding(key.WithKeys(km.PrevProject, "up"), key.WithHelp(km.PrevProject+"/↑", "previous project")),
		NextProject: key.NewBinding(key.WithKeys(km.NextProject, "down"), key.WithHelp(km.NextProject+"/↓", "next project")),
		ShowHelp:    key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "toggle help")),
		Quit:        key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// helpSections groups bindings for the help overlay
func (k keyMap) helpSections() []helpSection {
	return []helpSection{
		{"Projects", []key.Binding{k.AddProject, k.ViewProject}},
		{"Dragging", []key.Binding{k.GrabProject, k.DropProject, k.CancelDrag}},
		{"Navigation", []key.Binding{k.PrevColumn, k.NextColumn, k.PrevProject, k.NextProject}},
		{"Other", []key.Binding{k.SaveForm, k.ShowHelp, k.Quit}},
	}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}
