package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/undiscovered/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/undiscovered/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/undiscovered/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/undiscovered/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/undiscovered/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

// App is the result picker following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is passed to actions.
	ctx context.Context

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.TitleList
	statusbar *status.Bar
	help      help.Model

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates a window size has been received.
	ready bool

	quitting bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a picker over the given titles.
func NewApp(ports *Ports, titles []domain.TitleRecord) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating picker: %w", err)
	}
	if len(titles) == 0 {
		return nil, ErrNoTitles
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	titleList := list.NewTitleList(s)
	titleList.SetTitles(titles)

	bar := status.NewBar(s, km)
	bar.SetCount(len(titles))

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		list:      titleList,
		statusbar: bar,
		help:      help.New(),
		width:     80,
		height:    24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("undiscovered")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ActionCompleted:
		if msg.Err != nil {
			a.statusbar.SetError(msg.Err.Error())
		} else {
			a.statusbar.SetSuccess(fmt.Sprintf("%s %s", msg.Action, msg.Title.StoreURL()))
		}
		return a, nil

	case messages.Quit:
		a.quitting = true
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Open):
		return a, a.runAction(messages.ActionOpen)

	case key.Matches(msg, a.keymap.Copy):
		return a, a.runAction(messages.ActionCopy)

	case key.Matches(msg, a.keymap.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	}

	a.statusbar.Clear()
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// runAction performs an action on the selected title off the UI loop.
func (a *App) runAction(action messages.Action) tea.Cmd {
	selected := a.list.SelectedTitle()
	if selected == nil {
		return nil
	}
	title := *selected
	ctx := a.ctx
	service := a.ports.ResultAction

	return func() tea.Msg {
		var err error
		switch action {
		case messages.ActionOpen:
			err = service.OpenStorePage(ctx, &title)
		case messages.ActionCopy:
			err = service.CopyStoreURL(ctx, &title)
		}
		return messages.ActionCompleted{Action: action, Title: title, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	out := a.styles.Title.Render("undiscovered") + "\n\n" + a.list.View() + "\n\n"
	if a.help.ShowAll {
		out += a.help.View(a.keymap) + "\n\n"
	}
	return out + a.statusbar.View()
}

// Run starts the picker and blocks until the user exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Title line, blank lines and the status bar.
	a.list.SetDimensions(width, height-5)
	a.statusbar.SetWidth(width)
	a.help.Width = width
}

// Selected returns the currently highlighted title.
func (a *App) Selected() *domain.TitleRecord {
	return a.list.SelectedTitle()
}

// Status returns the status bar state and message.
func (a *App) Status() (status.State, string) {
	return a.statusbar.State(), a.statusbar.Message()
}

// Ready returns whether a window size has been received.
func (a *App) Ready() bool {
	return a.ready
}
