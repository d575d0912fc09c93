package view

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/ledger"
)

const requestTimeout = 30 * time.Second

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// NavigateMsg asks the root model to show the view at Path.
type NavigateMsg struct {
	Path string
}

func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// ToastMsg is a short-lived notice shown above the current view.
type ToastMsg struct {
	Text  string
	Error bool
}

func Toast(text string) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Text: text} }
}

func ToastError(err error) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Text: describe(err), Error: true} }
}

// describe picks the message a user should read for err.
func describe(err error) string {
	var (
		apiErr  *apiclient.Error
		netErr  *apiclient.NetworkError
		stepErr *ledger.StepError
	)

	switch {
	case errors.As(err, &stepErr):
		msg := "Could not finish: " + stepErr.Step + " failed (" + describe(stepErr.Err) + ")"
		if stepErr.CompensationErr != nil {
			msg += ". Some changes could not be undone, check your balances."
		}

		return msg
	case errors.As(err, &netErr):
		return netErr.Message
	case errors.As(err, &apiErr):
		return apiErr.Error()
	}

	return err.Error()
}

// Scope bounds the requests a view starts. Closing it when the view is left
// cancels whatever is still in flight.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScope(parent context.Context) Scope {
	ctx, cancel := context.WithCancel(parent)
	return Scope{ctx: ctx, cancel: cancel}
}

func (s Scope) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Request returns a context for one call made on behalf of the view.
func (s Scope) Request() (context.Context, context.CancelFunc) {
	return context.WithTimeout(s.ctx, requestTimeout)
}

// Closed reports whether err only means the view went away.
func Closed(err error) bool {
	return errors.Is(err, context.Canceled)
}
