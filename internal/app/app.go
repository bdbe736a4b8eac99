// internal/app/app.go
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/decoded/internal/ambient"
	"github.com/llehouerou/decoded/internal/keymap"
	"github.com/llehouerou/decoded/internal/media"
	"github.com/llehouerou/decoded/internal/session"
	"github.com/llehouerou/decoded/internal/theme"
	"github.com/llehouerou/decoded/internal/ui/helpbindings"
	"github.com/llehouerou/decoded/internal/ui/playerbar"
	"github.com/llehouerou/decoded/internal/ui/shelf"
	"github.com/llehouerou/decoded/internal/ui/transition"
)

const defaultSkip = 10.0

// Deps are the long-lived services the model drives. The caller owns them
// and closes them after the program exits.
type Deps struct {
	Session *session.Controller
	Binding media.Binding
	Theme   *theme.Machine
	Ambient *ambient.Mixer
	Keys    *keymap.Resolver
	Logger  *slog.Logger

	SkipSeconds float64
}

// Model is the root application model.
type Model struct {
	Session *session.Controller
	Theme   *theme.Machine
	Ambient *ambient.Mixer
	Keys    *keymap.Resolver

	Shelf   shelf.Model
	Bar     playerbar.Model
	Overlay transition.Model
	Help    helpbindings.Model

	ShowHelp     bool
	ErrorMsg     string
	errorVersion int

	events <-chan media.Event
	errors *session.Subscription
	skip   float64
	logger *slog.Logger

	Width  int
	Height int
}

// New creates the root model.
func New(d Deps) Model {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := d.Keys
	if keys == nil {
		keys = keymap.Default()
	}
	skip := d.SkipSeconds
	if skip <= 0 {
		skip = defaultSkip
	}
	mixer := d.Ambient
	if mixer == nil {
		mixer = ambient.New(ambient.Silent{}, ambient.Silent{}, d.Theme.Theme(), true)
	}

	var events <-chan media.Event
	if d.Binding != nil {
		events = d.Binding.Events()
	}

	return Model{
		Session: d.Session,
		Theme:   d.Theme,
		Ambient: mixer,
		Keys:    keys,
		Shelf:   shelf.New(d.Session.Catalog().Episodes()),
		Bar:     playerbar.New(),
		Overlay: transition.New(),
		Help:    helpbindings.New(),
		events:  events,
		errors:  d.Session.Subscribe(),
		skip:    skip,
		logger:  logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForMediaEvent(m.events),
		WatchErrors(m.errors),
	)
}
