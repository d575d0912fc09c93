package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/finboard/internal/auth"
	"github.com/MrJamesThe3rd/finboard/internal/cache"
	"github.com/MrJamesThe3rd/finboard/internal/entity"
	"github.com/MrJamesThe3rd/finboard/internal/importer"
	"github.com/MrJamesThe3rd/finboard/internal/ledger"
)

// Deps is what every view may reach.
type Deps struct {
	Set      *entity.Set
	Ledger   *ledger.Ledger
	Store    *cache.Store
	Auth     *auth.Session
	Importer *importer.Service
}

// refreshedMsg reports a finished cache reload.
type refreshedMsg struct {
	err error
}

// refresh reloads kinds into the cache. Views call it after every write so
// what they show is what the backend holds.
func (d Deps) refresh(scope Scope, kinds ...cache.Kind) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := scope.Request()
		defer cancel()

		return refreshedMsg{err: d.Store.Refresh(ctx, d.Set, kinds...)}
	}
}
