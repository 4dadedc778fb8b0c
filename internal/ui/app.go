package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"countrydeck/internal/graphql"
)

// LoadingText is the placeholder shown while the query is in flight.
const LoadingText = "Chargement des pays..."

// ErrorPrefix precedes the underlying error text when the query fails.
const ErrorPrefix = "Erreur : "

// AppModel is the root model: it runs the countries query and shows either
// the loading placeholder, the error, or the browser.
type AppModel struct {
	State   LoadState
	Err     error
	Browser *BrowserView
	Keys    *KeybindRegistry
	Fetcher graphql.Fetcher
	Timeout time.Duration
	Logger  *zap.Logger

	spinner spinner.Model
	load    int // sequence number of the current load
	width   int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. fetcher is the query client built at
// startup; timeout bounds each load (0 = no extra deadline).
func NewAppModel(fetcher graphql.Fetcher, timeout time.Duration, logger *zap.Logger) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "quit")
	reg.BindForFocus("q", tea.Quit, "quit", []FocusID{FocusNone, FocusContinent, FocusList})
	reg.Bind("tab", func() tea.Msg { return FocusNextMsg{} }, "next")
	reg.Bind("shift+tab", func() tea.Msg { return FocusPrevMsg{} }, "")
	reg.Bind("ctrl+r", func() tea.Msg { return RefetchMsg{} }, "reload")

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	return &AppModel{
		State:   StateLoading,
		Browser: NewBrowserView(reg),
		Keys:    reg,
		Fetcher: fetcher,
		Timeout: timeout,
		Logger:  logger,
		spinner: s,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// focus returns the control keys are routed to; FocusNone outside the browser.
func (m *AppModel) focus() FocusID {
	if m.State != StateReady || m.Browser == nil {
		return FocusNone
	}
	return m.Browser.Focus.Current
}

// startLoad begins a new load of the countries query.
func (m *AppModel) startLoad() tea.Cmd {
	m.load++
	m.State = StateLoading
	m.Err = nil
	m.Logger.Debug("loading countries", zap.Int("load", m.load))
	return tea.Batch(m.spinner.Tick, fetchCountriesCmd(m.Fetcher, m.Timeout, m.load))
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.startLoad(), a.Browser.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CountriesLoadedMsg:
		if msg.Load != a.load {
			return a, nil
		}
		a.State = StateReady
		a.Browser.SetCountries(msg.Countries)
		a.Logger.Info("countries loaded", zap.Int("count", len(msg.Countries)))
		return a, nil
	case CountriesFailedMsg:
		if msg.Load != a.load {
			return a, nil
		}
		a.State = StateFailed
		a.Err = msg.Err
		a.Logger.Error("countries load failed", zap.Error(msg.Err))
		return a, nil
	case RefetchMsg:
		if a.State == StateLoading {
			return a, nil
		}
		return a, a.startLoad()
	case spinner.TickMsg:
		if a.State != StateLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case tea.WindowSizeMsg:
		a.width = msg.Width
		_, cmd := a.Browser.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		if consumed, cmd := a.Keys.Handle(msg, a.focus()); consumed {
			return a, cmd
		}
	}

	if a.State != StateReady {
		return a, nil
	}
	v, cmd := a.Browser.Update(msg)
	if b, ok := v.(*BrowserView); ok {
		a.Browser = b
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	switch a.State {
	case StateLoading:
		return a.spinner.View() + " " + LoadingText
	case StateFailed:
		msg := ErrorPrefix
		if a.Err != nil {
			msg += a.Err.Error()
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			Styles.Error.Render(msg),
			"",
			RenderKeybindHelp(a.Keys, FocusNone, a.width),
		)
	}
	return a.Browser.View()
}
