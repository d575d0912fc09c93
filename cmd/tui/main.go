package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/finboard/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/auth"
	"github.com/MrJamesThe3rd/finboard/internal/cache"
	"github.com/MrJamesThe3rd/finboard/internal/config"
	"github.com/MrJamesThe3rd/finboard/internal/entity"
	"github.com/MrJamesThe3rd/finboard/internal/importer"
	"github.com/MrJamesThe3rd/finboard/internal/ledger"
	"github.com/MrJamesThe3rd/finboard/internal/session"
)

const toastTTL = 4 * time.Second

// page is what every routed view implements.
type page interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// navigator lets the API client send the UI to the login view when the
// session expires mid-request.
type navigator struct {
	mu      sync.Mutex
	current string
	program *tea.Program
	session *auth.Session
}

func (n *navigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.current
}

func (n *navigator) setCurrent(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = path
}

// Redirect is only called once the client dropped a rejected token, so the
// auth session is expired before the login view shows.
func (n *navigator) Redirect(path string) {
	if n.session != nil {
		n.session.Expire()
	}

	if n.program != nil {
		n.program.Send(view.NavigateMsg{Path: path})
	}
}

type toast struct {
	text  string
	error bool
	id    int
}

type clearToastMsg struct{ id int }

type model struct {
	deps view.Deps
	nav  *navigator
	ctx  context.Context

	path  string
	page  page
	scope view.Scope
	size  *tea.WindowSizeMsg

	toast   *toast
	toastID int
}

func newModel(ctx context.Context, deps view.Deps, nav *navigator) model {
	return model{deps: deps, nav: nav, ctx: ctx}
}

type bootstrappedMsg struct{ err error }

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, 30*time.Second)
		defer cancel()

		_, err := m.deps.Auth.Bootstrap(ctx)

		return bootstrappedMsg{err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bootstrappedMsg:
		if msg.err != nil {
			slog.Info("no active session", "error", msg.err)
			return m.open("/")
		}

		return m.open(auth.HomePath)

	case view.NavigateMsg:
		return m.open(msg.Path)

	case view.BackMsg:
		return m.open(auth.HomePath)

	case view.ToastMsg:
		m.toastID++
		m.toast = &toast{text: msg.Text, error: msg.Error, id: m.toastID}
		id := m.toastID

		return m, tea.Tick(toastTTL, func(time.Time) tea.Msg { return clearToastMsg{id: id} })

	case clearToastMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.size = &msg

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.scope.Close()
			return m, tea.Quit
		}
	}

	if m.page == nil {
		return m, nil
	}

	next, cmd := m.page.Update(msg)
	if p, ok := next.(page); ok {
		m.page = p
	}

	return m, cmd
}

// open replaces the current view, cancelling whatever the old one had in flight.
func (m model) open(path string) (tea.Model, tea.Cmd) {
	if path == "" {
		path = auth.HomePath
	}

	if path != "/" && m.deps.Auth.State() != auth.StateAuthenticated {
		path = "/"
	}

	m.scope.Close()
	m.scope = view.NewScope(m.ctx)

	var p page

	switch path {
	case "/dashboard":
		p = view.NewDashboardModel(m.deps, m.scope)
	case "/bills":
		p = view.NewBillsModel(m.deps, m.scope)
	case "/receivables":
		p = view.NewReceivablesModel(m.deps, m.scope)
	case "/extra-income":
		p = view.NewIncomesModel(m.deps, m.scope)
	case "/transactions":
		p = view.NewTransactionsModel(m.deps, m.scope)
	case "/import":
		p = view.NewImportModel(m.deps, m.scope)
	default:
		path = "/"
		p = view.NewLoginModel(m.deps, m.scope)
	}

	m.path = path
	m.page = p
	m.nav.setCurrent(path)

	cmds := []tea.Cmd{p.Init()}

	if m.size != nil {
		next, cmd := p.Update(*m.size)
		if np, ok := next.(page); ok {
			m.page = np
		}

		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).PaddingLeft(2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(2)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).PaddingLeft(2)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).PaddingLeft(2)
)

func (m model) View() string {
	if m.page == nil {
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	}

	header := m.page.Title()
	if u := m.deps.Auth.User(); u != nil {
		header = fmt.Sprintf("%s  ·  %s", header, u.Name)
	}

	out := headerStyle.Render(header) + "\n"

	if m.toast != nil {
		style := infoStyle
		if m.toast.error {
			style = errorStyle
		}

		out += style.Render(m.toast.text) + "\n"
	}

	return out + m.page.View() + "\n" + helpStyle.Render(m.page.ShortHelp())
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.App.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.App.LogLevel}))
	slog.SetDefault(logger)

	sessionPath, err := cfg.SessionPath()
	if err != nil {
		slog.Error("failed to resolve session path", "error", err)
		os.Exit(1)
	}

	sess, err := session.OpenFile(sessionPath)
	if err != nil {
		slog.Error("failed to open session", "error", err)
		os.Exit(1)
	}

	nav := &navigator{}

	client, err := apiclient.New(cfg.API.BaseURL, sess,
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithNavigator(nav),
		apiclient.WithLogger(logger),
	)
	if err != nil {
		slog.Error("failed to create api client", "error", err)
		os.Exit(1)
	}

	set := entity.New(client)

	deps := view.Deps{
		Set:      set,
		Ledger:   ledger.New(set, cfg.Settlement.Mode, logger),
		Store:    cache.NewStore(logger),
		Auth:     auth.New(set.Users, sess, auth.WithLogger(logger)),
		Importer: importer.NewService(set.Transactions, logger),
	}

	nav.session = deps.Auth

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(newModel(ctx, deps, nav), tea.WithAltScreen())
	nav.program = p

	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
