package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Settings key.Binding
	Mode     key.Binding
	Format   key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
	Back     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Settings, k.Mode, k.Format, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Settings, k.Mode, k.Format, k.Reset},
		{k.Help, k.Back, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "next display mode"),
		),
		Format: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "next time format"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset to defaults"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close panel"),
		),
	}
}
