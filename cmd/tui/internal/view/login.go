package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/finboard/internal/user"
)

type loginFields struct {
	email    string
	password string
}

type LoginModel struct {
	CommonModel
	deps  Deps
	scope Scope

	form    *huh.Form
	fields  *loginFields
	loading bool
	err     error
}

func NewLoginModel(deps Deps, scope Scope) LoginModel {
	m := LoginModel{deps: deps, scope: scope, fields: &loginFields{}}
	m.form = m.newForm()

	return m
}

func (m LoginModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&m.fields.email).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return fmt.Errorf("enter an email address")
					}
					return nil
				}),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fields.password),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m LoginModel) Title() string     { return "Sign in" }
func (m LoginModel) ShortHelp() string { return "Enter: next | Ctrl+C: quit" }

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(loginMsg); ok {
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.fields.password = ""
			m.form = m.newForm()

			return m, tea.Batch(m.form.Init(), ToastError(msg.err))
		}

		return m, Navigate(msg.redirect)
	}

	if m.loading {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.loading = true

	return m, m.loginCmd()
}

func (m LoginModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("Finboard")

	body := m.form.View()
	if m.loading {
		body = "Signing in..."
	}

	return lipgloss.NewStyle().Padding(2).Render(title + "\n\n" + body)
}

type loginMsg struct {
	redirect string
	err      error
}

func (m LoginModel) loginCmd() tea.Cmd {
	creds := user.Credentials{Email: m.fields.email, Password: m.fields.password}

	return func() tea.Msg {
		ctx, cancel := m.scope.Request()
		defer cancel()

		redirect, err := m.deps.Auth.Login(ctx, creds)

		return loginMsg{redirect: redirect, err: err}
	}
}
