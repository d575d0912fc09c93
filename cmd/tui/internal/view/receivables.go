package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/finboard/internal/cache"
	"github.com/MrJamesThe3rd/finboard/internal/receivable"
)

var receivableFilters = []receivable.Status{"", receivable.StatusPending, receivable.StatusOverdue, receivable.StatusReceived, receivable.StatusReceivedLate}

type ReceivablesModel struct {
	CommonModel
	deps  Deps
	scope Scope

	table     table.Model
	shown     []*receivable.Receivable
	filterIdx int
	receiving bool
}

func NewReceivablesModel(deps Deps, scope Scope) ReceivablesModel {
	return ReceivablesModel{
		deps:  deps,
		scope: scope,
		table: newTable([]table.Column{
			{Title: "Due", Width: 12},
			{Title: "Description", Width: 28},
			{Title: "Amount", Width: 16},
			{Title: "Status", Width: 10},
			{Title: "Received", Width: 12},
			{Title: "Bank", Width: 18},
		}, 15),
	}
}

func (m ReceivablesModel) Title() string     { return "Receivables" }
func (m ReceivablesModel) ShortHelp() string { return "Esc: back | p: receive | s: status filter | r: refresh" }

func (m ReceivablesModel) Init() tea.Cmd {
	return m.deps.refresh(m.scope, cache.KindReceivables, cache.KindBanks)
}

func (m ReceivablesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshedMsg:
		m.fillTable()
		if msg.err != nil && !Closed(msg.err) {
			return m, ToastError(msg.err)
		}

		return m, nil

	case receivableReceivedMsg:
		m.receiving = false

		refresh := m.deps.refresh(m.scope, cache.KindReceivables, cache.KindBanks, cache.KindTransactions)
		if msg.err != nil {
			return m, tea.Batch(refresh, ToastError(msg.err))
		}

		return m, tea.Batch(refresh, Toast(fmt.Sprintf("%s received (%s)", msg.item.Description(), msg.item.Status)))

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			return m, m.Init()
		case "s":
			m.filterIdx = (m.filterIdx + 1) % len(receivableFilters)
			m.fillTable()

			return m, nil
		case "p":
			return m.receive()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ReceivablesModel) receive() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if m.receiving || idx < 0 || idx >= len(m.shown) {
		return m, nil
	}

	m.receiving = true

	return m, m.receiveCmd(m.shown[idx])
}

func (m ReceivablesModel) View() string {
	label := "All"
	if f := receivableFilters[m.filterIdx]; f != "" {
		label = string(f)
	}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(label))
	if m.receiving {
		header += faint("   receiving...")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ReceivablesModel) fillTable() {
	filter := receivableFilters[m.filterIdx]

	m.shown = m.shown[:0]
	rows := []table.Row{}

	for _, rc := range m.deps.Store.Receivables.Items() {
		if filter != "" && rc.Status != filter {
			continue
		}

		m.shown = append(m.shown, rc)
		rows = append(rows, table.Row{
			FormatDate(rc.DueDate),
			rc.Description(),
			FormatAmount(rc.Amount()),
			string(rc.Status),
			FormatDate(rc.ReceivedDate),
			m.deps.Store.BankName(rc.BankID()),
		})
	}

	m.table.SetRows(rows)
}

type receivableReceivedMsg struct {
	item *receivable.Receivable
	err  error
}

func (m ReceivablesModel) receiveCmd(rc *receivable.Receivable) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.scope.Request()
		defer cancel()

		received, err := m.deps.Ledger.Settler.ReceiveReceivable(ctx, rc)

		return receivableReceivedMsg{item: received, err: err}
	}
}
