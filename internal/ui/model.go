package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/config"
	"modwall/internal/configurator"
	"modwall/internal/domain"
	"modwall/internal/eventbus"
	"modwall/internal/flow"
	"modwall/internal/geometry"
	"modwall/internal/submission"
	"modwall/internal/ui/commands"
	"modwall/internal/ui/handlers"
	"modwall/internal/ui/input"
	inputtypes "modwall/internal/ui/input/types"
	"modwall/internal/ui/state"
	"modwall/internal/ui/views"
)

// statusTTL is how long transient status messages stay visible
const statusTTL = 4 * time.Second

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	session *configurator.Session
	state   *state.AppState // UI-only state

	help    help.Model
	spinner spinner.Model

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	cmdExecutor  *commands.Executor
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler

	// Program reference for terminal management
	program *tea.Program
	pager   *PagerOps
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, session *configurator.Session) *Model {
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		session:      session,
		state:        appState,
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		cmdExecutor:  commands.NewExecutor(session, appState, bus),
		inputHandler: input.New(),
	}

	m.eventHandler = handlers.NewEventHandler(session, appState, func() tea.Cmd {
		m.inputHandler.Reset()
		return m.syncMode()
	})
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Init opens the configurator straight away
func (m *Model) Init() tea.Cmd {
	var cmd tea.Cmd
	if !m.session.IsOpen() {
		cmd = m.processAction(inputtypes.OpenConfiguratorAction{})
	} else {
		m.loadInputs()
	}
	return tea.Batch(cmd, m.syncMode())
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		Session: m.session,
		State:   m.state,
		Handler: m.inputHandler,
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Help popup swallows keys until closed
		if m.state.ShowHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "p":
				m.state.ShowHelp = false
				return m, m.fetchPager("help", m.helpRenderer.RenderHelpContent())
			case "esc", "?", "q":
				m.state.ShowHelp = false
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		if syncCmd := m.syncMode(); syncCmd != nil {
			cmds = append(cmds, syncCmd)
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !m.session.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// syncMode puts the input handler in the mode matching the session
func (m *Model) syncMode() tea.Cmd {
	actions, cmd := m.inputHandler.Sync(m.targetMode(), m.context())
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) targetMode() inputtypes.Mode {
	switch {
	case !m.session.IsOpen():
		return inputtypes.ModeClosed
	case m.session.ConfirmOpen():
		return inputtypes.ModeConfirm
	default:
		return inputtypes.ModeForStage(m.session.Stage())
	}
}

// loadInputs copies the typed dimensions from the selection into the text inputs
func (m *Model) loadInputs() {
	s := m.session.State()
	m.inputHandler.SetValues(s.Width.Raw, s.Height.Raw)
}

// applyConfiguredUnits converts the default lengths to the units from the config
func (m *Model) applyConfiguredUnits() {
	if m.config == nil {
		return
	}
	s := m.session.State()
	if unit := m.config.UISettings.WidthUnit; unit != "" && unit != s.Width.Unit {
		m.session.SetWidth(convertRaw(s.Width, unit), unit)
	}
	if unit := m.config.UISettings.HeightUnit; unit != "" && unit != s.Height.Unit {
		m.session.SetHeight(convertRaw(s.Height, unit), unit)
	}
}

// convertRaw re-expresses the typed length in unit, keeping its value
func convertRaw(l domain.Length, unit domain.Unit) string {
	return geometry.FormatLength(geometry.ToCanonicalMM(l.Raw, l.Unit), unit)
}

// fetchPager returns a command that shows content using the ov pager
func (m *Model) fetchPager(what, content string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

// payloadPreview renders what a submission would send right now
func (m *Model) payloadPreview() (string, error) {
	s := m.session.State()
	preview := struct {
		Payload  domain.Payload  `json:"payload"`
		Metadata domain.Metadata `json:"metadata"`
	}{
		Payload:  submission.Project(s, m.session.Catalog()),
		Metadata: submission.Describe(s, m.session.Catalog(), m.session.Brand()),
	}
	data, err := json.MarshalIndent(preview, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return string(data), nil
}

func (m *Model) clearStatusLater() tea.Cmd {
	return tea.Tick(statusTTL, func(t time.Time) tea.Msg { return clearStatusMsg{} })
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	if action == nil {
		return nil
	}

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.AdvanceAction:
		before := m.session.Stage()
		switch m.session.Advance() {
		case flow.Blocked:
			if v := m.session.Verdict(); v.Message != "" {
				m.state.SetError(v.Message)
			}
		case flow.Advanced:
			m.state.ClearStatus()
			log.Printf("ui: advanced from %s to %s", before, m.session.Stage())
		}

	case inputtypes.BackAction:
		if m.session.Back() {
			m.state.ClearStatus()
		}

	case inputtypes.ContinueAnywayAction:
		m.session.ContinueAnyway()

	case inputtypes.StayAction:
		m.session.GoBackFromConfirm()

	case inputtypes.CancelWalkAction:
		cmd := m.cmdExecutor.ExecuteCancelWalk()
		m.loadInputs()
		return tea.Batch(cmd, m.clearStatusLater())

	case inputtypes.OpenConfiguratorAction:
		cmd := m.cmdExecutor.ExecuteOpen()
		m.applyConfiguredUnits()
		m.loadInputs()
		return cmd

	case inputtypes.UpdateTextAction:
		s := m.session.State()
		if a.Field == inputtypes.FieldWidth {
			m.session.SetWidth(a.Text, s.Width.Unit)
		} else {
			m.session.SetHeight(a.Text, s.Height.Unit)
		}

	case inputtypes.FocusFieldAction:
		return m.inputHandler.FocusField(a.Field)

	case inputtypes.ToggleUnitAction:
		s := m.session.State()
		if a.Field == inputtypes.FieldWidth {
			unit := s.Width.Unit.Toggle()
			m.session.SetWidth(convertRaw(s.Width, unit), unit)
		} else {
			unit := s.Height.Unit.Toggle()
			m.session.SetHeight(convertRaw(s.Height, unit), unit)
		}
		m.loadInputs()

	case inputtypes.CycleModuleWidthAction:
		m.session.SetModuleWidth(nextModuleWidth(m.session.State().ModuleWidthMM, a.Delta))

	case inputtypes.ToggleAccessoryAction:
		switch a.Name {
		case "tv":
			m.session.ToggleTV()
		case "fireplace":
			m.session.ToggleFireplace()
		case "soundbar":
			m.session.ToggleSoundbar()
		}

	case inputtypes.ShelvingAction:
		if a.Delta > 0 {
			m.session.IncrementShelving()
		} else if a.Delta < 0 {
			m.session.DecrementShelving()
		}

	case inputtypes.SetGamingModeAction:
		m.session.SetGamingMode(a.Mode)
		if a.Mode == domain.GamingDual {
			if warnings := m.session.Warnings(); len(warnings) > 0 {
				m.state.SetError(warnings[0].Message)
				return m.clearStatusLater()
			}
		}

	case inputtypes.ToggleItemAction:
		return m.toggleItem()

	case inputtypes.SwitchPaneAction:
		if m.state.Pane == inputtypes.PaneCategories {
			m.state.Pane = inputtypes.PanePanels
		} else {
			m.state.Pane = inputtypes.PaneCategories
		}

	case inputtypes.ToggleStockFilterAction:
		m.state.InStockOnly = !m.state.InStockOnly
		m.state.PanelCursor = state.Move(m.state.PanelCursor, 0, len(m.visiblePanels()))

	case inputtypes.SubmitAction:
		cmd := m.cmdExecutor.ExecuteSubmit()
		if m.session.Submitting() {
			return tea.Batch(cmd, m.spinner.Tick)
		}
		return cmd

	case inputtypes.OpenPayloadAction:
		content, err := m.payloadPreview()
		if err != nil {
			log.Printf("payload preview failed: %v", err)
			m.state.SetError(err.Error())
			return nil
		}
		return m.fetchPager("payload", content)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		if !a.Force && m.session.Submitting() {
			m.state.SetError("A submission is in progress, press ctrl+c to quit anyway")
			return nil
		}
		return func() tea.Msg { return quitMsg{} }
	}

	return nil
}

// nextModuleWidth steps through the module widths; unset starts at either end
func nextModuleWidth(current, delta int) int {
	widths := domain.ModuleWidthsMM
	idx := -1
	for i, w := range widths {
		if w == current {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta > 0:
		return widths[0]
	case idx < 0:
		return widths[len(widths)-1]
	}
	return widths[state.Move(idx, delta, len(widths))]
}

func (m *Model) navigate(direction string) {
	delta := 0
	switch direction {
	case "up":
		delta = -1
	case "down":
		delta = 1
	case "home":
		delta = -1 << 20
	case "end":
		delta = 1 << 20
	}

	cat := m.session.Catalog()
	switch m.session.Stage() {
	case domain.StageGaming:
		m.state.GamingCursor = state.Move(m.state.GamingCursor, delta, len(cat.GamingOptions()))
	case domain.StageDevices:
		m.state.DeviceCursor = state.Move(m.state.DeviceCursor, delta, len(cat.Devices()))
	case domain.StageStyles:
		if m.state.Pane == inputtypes.PaneCategories {
			m.state.CategoryCursor = state.Move(m.state.CategoryCursor, delta, len(cat.CategoriesList()))
		} else {
			m.state.PanelCursor = state.Move(m.state.PanelCursor, delta, len(m.visiblePanels()))
		}
	}
}

func (m *Model) toggleItem() tea.Cmd {
	cat := m.session.Catalog()
	switch m.session.Stage() {
	case domain.StageGaming:
		options := cat.GamingOptions()
		if m.state.GamingCursor >= len(options) {
			return nil
		}
		if m.session.State().Gaming.Mode == domain.GamingNone {
			m.state.SetError("Choose a screen layout first")
			return m.clearStatusLater()
		}
		m.session.ToggleGamingOption(options[m.state.GamingCursor].ID)

	case domain.StageDevices:
		devices := cat.Devices()
		if m.state.DeviceCursor < len(devices) {
			m.session.ToggleDevice(devices[m.state.DeviceCursor].ID)
		}

	case domain.StageStyles:
		if m.state.Pane == inputtypes.PaneCategories {
			categories := cat.CategoriesList()
			if m.state.CategoryCursor >= len(categories) {
				return nil
			}
			m.session.SelectCategory(categories[m.state.CategoryCursor].ID)
			m.state.PanelCursor = 0
			m.state.Pane = inputtypes.PanePanels
			return nil
		}
		panels := m.visiblePanels()
		if m.state.PanelCursor < len(panels) {
			m.session.SelectFinish(panels[m.state.PanelCursor].ID)
		}
	}
	return nil
}

// visiblePanels lists the panels of the chosen category, honouring the stock filter
func (m *Model) visiblePanels() []domain.Panel {
	category := m.session.State().StyleCategory
	if category == "" {
		return nil
	}
	if m.state.InStockOnly {
		return m.session.Catalog().InStockPanelsFor(category)
	}
	return m.session.Catalog().PanelsFor(category)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case pagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("%s pager failed: %v", msg.what, msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case clearStatusMsg, handlers.ClearStatusMsg:
		m.state.ClearStatus()
		return m, nil

	case quitMsg:
		return m, tea.Quit

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	s := m.session.State()
	cat := m.session.Catalog()

	vs := views.ViewState{
		Width:          m.state.Width,
		Height:         m.state.Height,
		Brand:          m.session.Brand(),
		Open:           m.session.IsOpen(),
		Stage:          m.session.Stage(),
		ConfirmOpen:    m.session.ConfirmOpen(),
		Selection:      s,
		Verdict:        m.session.Verdict(),
		Warnings:       m.session.Warnings(),
		WidthInput:     m.inputHandler.Input(inputtypes.FieldWidth).View(),
		HeightInput:    m.inputHandler.Input(inputtypes.FieldHeight).View(),
		FocusedField:   m.inputHandler.FocusedField(),
		GamingOptions:  cat.GamingOptions(),
		GamingCursor:   m.state.GamingCursor,
		Devices:        cat.Devices(),
		DeviceCursor:   m.state.DeviceCursor,
		Categories:     cat.CategoriesList(),
		CategoryCursor: m.state.CategoryCursor,
		Panels:         m.visiblePanels(),
		PanelCursor:    m.state.PanelCursor,
		Pane:           m.state.Pane,
		InStockOnly:    m.state.InStockOnly,
		Submitting:     m.session.Submitting(),
		Spinner:        m.spinner.View(),
		LastFailure:    m.session.LastFailure(),
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		ShowHelp:       m.state.ShowHelp,
		Footer:         m.help.View(keysFor(m.inputHandler.CurrentMode())),
	}
	if m.config != nil {
		vs.ShowStock = m.config.UISettings.ShowStock
	}
	if vs.ShowHelp {
		vs.HelpContent = m.helpRenderer.RenderHelpContent()
	}

	if vs.Stage == domain.StageSummary {
		vs.SummaryTitle = submission.Describe(s, cat, m.session.Brand()).Title
		if panel, ok := cat.Panel(s.StyleCategory, s.Finish); ok {
			vs.FinishName = panel.Name
		}
	}
	return vs
}
