package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "modwall/internal/ui/input/types"
)

// footerKeys implements help.KeyMap for the footer of the current mode
type footerKeys struct {
	bindings []key.Binding
}

func (k footerKeys) ShortHelp() []key.Binding {
	return k.bindings
}

func (k footerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.bindings}
}

var (
	keyNext    = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next"))
	keyBack    = key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back"))
	keyCancel  = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "start over"))
	keyHelp    = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))
	keyQuit    = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	keyToggle  = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	keyField   = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "field"))
	keyUnit    = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unit"))
	keyModule  = key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "module"))
	keyAccs    = key.NewBinding(key.WithKeys("t", "f", "s"), key.WithHelp("t/f/s", "tv/fire/sound"))
	keyShelf   = key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "shelves"))
	keyScreens = key.NewBinding(key.WithKeys("0", "1", "2"), key.WithHelp("0/1/2", "screens"))
	keyPane    = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pane"))
	keyPick    = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick"))
	keyStock   = key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "in stock"))
	keySubmit  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
	keyPayload = key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "payload"))
	keyYes     = key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "continue anyway"))
	keyNo      = key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "go back"))
	keyOpen    = key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open configurator"))
)

// keysFor returns the footer bindings of mode
func keysFor(mode inputtypes.Mode) footerKeys {
	switch mode {
	case inputtypes.ModeDimensions:
		return footerKeys{[]key.Binding{keyField, keyUnit, keyModule, keyNext, keyHelp, keyQuit}}
	case inputtypes.ModeAccessories:
		return footerKeys{[]key.Binding{keyAccs, keyShelf, keyNext, keyBack, keyCancel, keyHelp}}
	case inputtypes.ModeGaming:
		return footerKeys{[]key.Binding{keyScreens, keyToggle, keyNext, keyBack, keyCancel, keyHelp}}
	case inputtypes.ModeDevices:
		return footerKeys{[]key.Binding{keyToggle, keyNext, keyBack, keyCancel, keyHelp}}
	case inputtypes.ModeStyles:
		return footerKeys{[]key.Binding{keyPane, keyPick, keyStock, keyNext, keyBack, keyHelp}}
	case inputtypes.ModeSummary:
		return footerKeys{[]key.Binding{keySubmit, keyPayload, keyBack, keyCancel, keyHelp}}
	case inputtypes.ModeConfirm:
		return footerKeys{[]key.Binding{keyYes, keyNo}}
	default:
		return footerKeys{[]key.Binding{keyOpen, keyQuit}}
	}
}
