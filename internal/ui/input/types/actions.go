package types

import "modwall/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Stage transition actions
type AdvanceAction struct{}

func (a AdvanceAction) Type() string { return "advance" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

type ContinueAnywayAction struct{}

func (a ContinueAnywayAction) Type() string { return "continue_anyway" }

type StayAction struct{}

func (a StayAction) Type() string { return "stay" }

type CancelWalkAction struct{}

func (a CancelWalkAction) Type() string { return "cancel_walk" }

type OpenConfiguratorAction struct{}

func (a OpenConfiguratorAction) Type() string { return "open_configurator" }

// Dimension actions
type UpdateTextAction struct {
	Field Field
	Text  string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type FocusFieldAction struct {
	Field Field
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type ToggleUnitAction struct {
	Field Field
}

func (a ToggleUnitAction) Type() string { return "toggle_unit" }

type CycleModuleWidthAction struct {
	Delta int // +1 next wider, -1 next narrower
}

func (a CycleModuleWidthAction) Type() string { return "cycle_module_width" }

// Accessory actions
type ToggleAccessoryAction struct {
	Name string // "tv", "fireplace", "soundbar"
}

func (a ToggleAccessoryAction) Type() string { return "toggle_accessory" }

type ShelvingAction struct {
	Delta int
}

func (a ShelvingAction) Type() string { return "shelving" }

// Gaming, device and style actions
type SetGamingModeAction struct {
	Mode domain.GamingMode
}

func (a SetGamingModeAction) Type() string { return "set_gaming_mode" }

// ToggleItemAction toggles the list item under the cursor
type ToggleItemAction struct{}

func (a ToggleItemAction) Type() string { return "toggle_item" }

type SwitchPaneAction struct{}

func (a SwitchPaneAction) Type() string { return "switch_pane" }

type ToggleStockFilterAction struct{}

func (a ToggleStockFilterAction) Type() string { return "toggle_stock_filter" }

// Summary actions
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

type OpenPayloadAction struct{}

func (a OpenPayloadAction) Type() string { return "open_payload" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
