package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/cache"
	"github.com/MrJamesThe3rd/finboard/internal/vault"
)

type dashFocus int

const (
	focusBanks dashFocus = iota
	focusVaults
)

type vaultFields struct {
	amount  string
	deposit bool
}

// DashboardModel shows banks, vaults and the overall metrics. It is also the
// hub the other views return to.
type DashboardModel struct {
	CommonModel
	deps  Deps
	scope Scope

	banks   table.Model
	vaults  table.Model
	focus   dashFocus
	metrics *bank.Metrics

	form   *huh.Form
	fields *vaultFields
	target *vault.Vault
}

func NewDashboardModel(deps Deps, scope Scope) DashboardModel {
	banks := newTable([]table.Column{
		{Title: "Bank", Width: 20},
		{Title: "Balance", Width: 16},
		{Title: "Income", Width: 16},
		{Title: "Expense", Width: 16},
	}, 8)

	vaults := newTable([]table.Column{
		{Title: "Vault", Width: 20},
		{Title: "Amount", Width: 16},
		{Title: "Bank", Width: 20},
	}, 6)
	vaults.Blur()

	return DashboardModel{deps: deps, scope: scope, banks: banks, vaults: vaults, fields: &vaultFields{}}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	if m.form != nil {
		return "Enter: confirm | Esc: cancel"
	}

	return "b: bills | r: receivables | i: income | t: transactions | m: import | tab: banks/vaults | d/w: vault deposit/withdraw | R: refresh | L: logout | q: quit"
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.deps.refresh(m.scope, cache.KindBanks, cache.KindVaults), m.metricsCmd())
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshedMsg:
		m.fillTables()
		if msg.err != nil && !Closed(msg.err) {
			return m, ToastError(msg.err)
		}

		return m, nil

	case metricsMsg:
		if msg.err != nil {
			return m, ToastError(msg.err)
		}

		m.metrics = msg.metrics

		return m, nil

	case vaultMovedMsg:
		m.form = nil
		m.target = nil

		cmds := []tea.Cmd{m.deps.refresh(m.scope, cache.KindBanks, cache.KindVaults, cache.KindTransactions), m.metricsCmd()}
		if msg.err != nil {
			cmds = append(cmds, ToastError(msg.err))
		} else {
			cmds = append(cmds, Toast("Vault updated"))
		}

		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.banks.SetHeight(max(msg.Height/3, 4))
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "b":
			return m, Navigate("/bills")
		case "r":
			return m, Navigate("/receivables")
		case "i":
			return m, Navigate("/extra-income")
		case "t":
			return m, Navigate("/transactions")
		case "m":
			return m, Navigate("/import")
		case "q":
			return m, tea.Quit
		case "L":
			return m, m.logoutCmd()
		case "R":
			return m, m.Init()
		case "tab":
			m.toggleFocus()
			return m, nil
		case "d", "w":
			if m.focus == focusVaults {
				return m.openVaultForm(key.String() == "d")
			}
		}
	}

	var cmd tea.Cmd
	if m.focus == focusBanks {
		m.banks, cmd = m.banks.Update(msg)
	} else {
		m.vaults, cmd = m.vaults.Update(msg)
	}

	return m, cmd
}

func (m *DashboardModel) toggleFocus() {
	if m.focus == focusBanks {
		m.focus = focusVaults
		m.banks.Blur()
		m.vaults.Focus()

		return
	}

	m.focus = focusBanks
	m.vaults.Blur()
	m.banks.Focus()
}

func (m DashboardModel) openVaultForm(deposit bool) (tea.Model, tea.Cmd) {
	items := m.deps.Store.Vaults.Items()

	idx := m.vaults.Cursor()
	if idx < 0 || idx >= len(items) {
		return m, nil
	}

	m.target = items[idx]
	m.fields.amount = ""
	m.fields.deposit = deposit

	title := "Withdraw to bank"
	if deposit {
		title = "Deposit from bank"
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(title).
				Placeholder("0.00").
				Value(&m.fields.amount).
				Validate(validPositive),
		),
	).WithWidth(40).WithShowHelp(false)

	return m, m.form.Init()
}

func (m DashboardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.form = nil
		m.target = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.moveCmd()
}

func (m DashboardModel) View() string {
	var b strings.Builder

	if m.metrics != nil {
		b.WriteString(fmt.Sprintf("Total balance %s   Income %s   Expense %s   Banks %d\n\n",
			activeStyle(FormatAmount(m.metrics.TotalBalance)),
			FormatAmount(m.metrics.TotalIncome),
			FormatAmount(m.metrics.TotalExpense),
			m.metrics.BankCount,
		))
	}

	banks := m.deps.Store.Banks.Snapshot()
	if banks.Loading && len(banks.Items) == 0 {
		b.WriteString("Loading banks...\n")
	} else {
		b.WriteString(boxed(m.banks.View()) + "\n")
	}

	b.WriteString(boxed(m.vaults.View()))

	content := b.String()
	if m.form != nil && m.target != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content,
			panel(m.target.Name+" ("+FormatMoney(m.target.Amount, m.target.Currency)+")", m.form.View()))
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *DashboardModel) fillTables() {
	banks := m.deps.Store.Banks.Items()

	rows := make([]table.Row, 0, len(banks))
	for _, b := range banks {
		rows = append(rows, table.Row{
			b.Name,
			FormatAmount(b.CurrentBalance),
			FormatAmount(b.TotalIncome),
			FormatAmount(b.TotalExpense),
		})
	}

	m.banks.SetRows(rows)

	vaults := m.deps.Store.Vaults.Items()

	rows = make([]table.Row, 0, len(vaults))
	for _, v := range vaults {
		rows = append(rows, table.Row{v.Name, FormatMoney(v.Amount, v.Currency), m.deps.Store.BankName(v.BankID)})
	}

	m.vaults.SetRows(rows)
}

func validPositive(s string) error {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	if err != nil {
		return fmt.Errorf("enter a number")
	}

	if !d.IsPositive() {
		return fmt.Errorf("must be greater than zero")
	}

	return nil
}

func parseInputAmount(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	return d
}

type metricsMsg struct {
	metrics *bank.Metrics
	err     error
}

func (m DashboardModel) metricsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.scope.Request()
		defer cancel()

		metrics, err := m.deps.Set.Banks.Metrics(ctx)

		return metricsMsg{metrics: metrics, err: err}
	}
}

type vaultMovedMsg struct {
	err error
}

func (m DashboardModel) moveCmd() tea.Cmd {
	v := m.target
	amount := parseInputAmount(m.fields.amount)
	deposit := m.fields.deposit

	return func() tea.Msg {
		ctx, cancel := m.scope.Request()
		defer cancel()

		var err error
		if deposit {
			_, err = m.deps.Ledger.Vaults.Deposit(ctx, v, amount)
		} else {
			_, err = m.deps.Ledger.Vaults.Withdraw(ctx, v, amount)
		}

		return vaultMovedMsg{err: err}
	}
}

func (m DashboardModel) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.scope.Request()
		defer cancel()

		if err := m.deps.Auth.Logout(ctx); err != nil {
			return ToastMsg{Text: describe(err), Error: true}
		}

		return NavigateMsg{Path: "/"}
	}
}
