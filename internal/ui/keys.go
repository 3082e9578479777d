package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Jump    key.Binding
	Animate key.Binding
	Process key.Binding
	Stop    key.Binding
	Color   key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Jump, k.Animate, k.Process, k.Stop, k.Color, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("right", "l", "up", "k", "+"),
		key.WithHelp("←/→", "±5%"),
	),
	Down: key.NewBinding(
		key.WithKeys("left", "h", "down", "j", "-"),
	),
	Jump: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("0-9", "jump"),
	),
	Animate: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "animate"),
	),
	Process: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "process"),
	),
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop"),
	),
	Color: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "color"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// jumpPercent maps "1".."9" to 10-90% and "0" to 100%.
func jumpPercent(s string) int {
	if s == "0" {
		return 100
	}
	return int(s[0]-'0') * 10
}
