package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/finboard/internal/cache"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
)

var typeFilters = []transaction.Type{"", transaction.TypeDeposit, transaction.TypeWithdrawal}

type TransactionsModel struct {
	CommonModel
	deps  Deps
	scope Scope

	table     table.Model
	typeIdx   int
	timeframe Timeframe
	filter    transaction.ListFilter
}

func NewTransactionsModel(deps Deps, scope Scope) TransactionsModel {
	return TransactionsModel{
		deps:  deps,
		scope: scope,
		table: newTable([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Type", Width: 11},
			{Title: "Amount", Width: 16},
			{Title: "Description", Width: 32},
			{Title: "Bank", Width: 18},
			{Title: "Category", Width: 14},
		}, 15),
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }
func (m TransactionsModel) ShortHelp() string {
	return "Esc: back | t: type filter | d: date filter | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return tea.Batch(m.deps.refresh(m.scope, cache.KindBanks, cache.KindCategories), m.loadCmd())
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshedMsg:
		m.fillTable()
		if msg.err != nil && !Closed(msg.err) {
			return m, ToastError(msg.err)
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			return m, m.loadCmd()
		case "t":
			m.typeIdx = (m.typeIdx + 1) % len(typeFilters)
			m.applyFilter()

			return m, m.loadCmd()
		case "d":
			m.timeframe = m.timeframe.Next()
			m.applyFilter()

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *TransactionsModel) applyFilter() {
	m.filter.Type = nil
	if t := typeFilters[m.typeIdx]; t != "" {
		m.filter.Type = new(t)
	}

	m.filter.StartDate, m.filter.EndDate = m.timeframe.Range(time.Now())
}

func (m TransactionsModel) View() string {
	typeLabel := "All"
	if t := typeFilters[m.typeIdx]; t != "" {
		typeLabel = string(t)
	}

	header := fmt.Sprintf(
		"Filter: [t] Type: %s | [d] Date: %s",
		activeStyle(typeLabel),
		activeStyle(m.timeframe.String()),
	)

	snap := m.deps.Store.Transactions.Snapshot()
	if snap.Loading {
		header += faint("   loading...")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TransactionsModel) fillTable() {
	txs := m.deps.Store.Transactions.Items()

	rows := make([]table.Row, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			FormatAmount(tx.Signed()),
			tx.Description,
			m.deps.Store.BankName(tx.BankID),
			m.deps.Store.CategoryName(tx.CategoryID),
		})
	}

	m.table.SetRows(rows)
}

// loadCmd fetches the filtered list into the transactions slice.
func (m TransactionsModel) loadCmd() tea.Cmd {
	filter := m.filter
	slice := m.deps.Store.Transactions

	return func() tea.Msg {
		ctx, cancel := m.scope.Request()
		defer cancel()

		slice.SetLoading()

		txs, err := m.deps.Set.Transactions.Search(ctx, filter)
		if err != nil {
			slice.SetError(err)
			return refreshedMsg{err: err}
		}

		slice.SetItems(txs)

		return refreshedMsg{}
	}
}
