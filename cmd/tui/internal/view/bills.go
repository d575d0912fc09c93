package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/finboard/internal/bill"
	"github.com/MrJamesThe3rd/finboard/internal/cache"
)

var billFilters = []bill.Status{"", bill.StatusPending, bill.StatusOverdue, bill.StatusPaid, bill.StatusPaidLate}

type BillsModel struct {
	CommonModel
	deps  Deps
	scope Scope

	table     table.Model
	shown     []*bill.Bill
	filterIdx int
	paying    bool
}

func NewBillsModel(deps Deps, scope Scope) BillsModel {
	return BillsModel{
		deps:  deps,
		scope: scope,
		table: newTable([]table.Column{
			{Title: "Due", Width: 12},
			{Title: "Description", Width: 28},
			{Title: "Amount", Width: 16},
			{Title: "Status", Width: 10},
			{Title: "Paid", Width: 12},
			{Title: "Bank", Width: 18},
		}, 15),
	}
}

func (m BillsModel) Title() string     { return "Bills" }
func (m BillsModel) ShortHelp() string { return "Esc: back | p: pay | s: status filter | r: refresh" }

func (m BillsModel) Init() tea.Cmd {
	return m.deps.refresh(m.scope, cache.KindBills, cache.KindBanks)
}

func (m BillsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshedMsg:
		m.fillTable()
		if msg.err != nil && !Closed(msg.err) {
			return m, ToastError(msg.err)
		}

		return m, nil

	case billPaidMsg:
		m.paying = false

		refresh := m.deps.refresh(m.scope, cache.KindBills, cache.KindBanks, cache.KindTransactions)
		if msg.err != nil {
			return m, tea.Batch(refresh, ToastError(msg.err))
		}

		return m, tea.Batch(refresh, Toast(fmt.Sprintf("%s paid (%s)", msg.bill.Description(), msg.bill.Status)))

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
			m.filterIdx = (m.filterIdx + 1) % len(billFilters)
			m.fillTable()

			return m, nil
		case "p":
			return m.pay()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BillsModel) pay() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if m.paying || idx < 0 || idx >= len(m.shown) {
		return m, nil
	}

	m.paying = true

	return m, m.payCmd(m.shown[idx])
}

func (m BillsModel) View() string {
	label := "All"
	if f := billFilters[m.filterIdx]; f != "" {
		label = string(f)
	}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(label))
	if m.paying {
		header += faint("   paying...")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *BillsModel) fillTable() {
	filter := billFilters[m.filterIdx]

	m.shown = m.shown[:0]
	rows := []table.Row{}

	for _, b := range m.deps.Store.Bills.Items() {
		if filter != "" && b.Status != filter {
			continue
		}

		m.shown = append(m.shown, b)
		rows = append(rows, table.Row{
			FormatDate(b.DueDate),
			b.Description(),
			FormatAmount(b.Amount()),
			string(b.Status),
			FormatDate(b.PaymentDate),
			m.deps.Store.BankName(b.BankID()),
		})
	}

	m.table.SetRows(rows)
}

type billPaidMsg struct {
	bill *bill.Bill
	err  error
}

func (m BillsModel) payCmd(b *bill.Bill) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.scope.Request()
		defer cancel()

		paid, err := m.deps.Ledger.Settler.PayBill(ctx, b)

		return billPaidMsg{bill: paid, err: err}
	}
}
