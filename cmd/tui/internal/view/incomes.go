package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/cache"
	"github.com/MrJamesThe3rd/finboard/internal/income"
)

type incomeState int

const (
	incomeStateBrowse incomeState = iota
	incomeStateEdit
	incomeStateConfirmDelete
)

type incomeFields struct {
	description string
	amount      string
	bankID      uuid.UUID
	confirm     bool
}

// IncomesModel edits extra income. Every write goes through the ledger so the
// linked bank follows.
type IncomesModel struct {
	CommonModel
	deps  Deps
	scope Scope

	state   incomeState
	table   table.Model
	form    *huh.Form
	fields  *incomeFields
	editing *income.ExtraIncome
	busy    bool
}

func NewIncomesModel(deps Deps, scope Scope) IncomesModel {
	return IncomesModel{
		deps:   deps,
		scope:  scope,
		fields: &incomeFields{},
		table: newTable([]table.Column{
			{Title: "Description", Width: 32},
			{Title: "Amount", Width: 16},
			{Title: "Bank", Width: 20},
			{Title: "Category", Width: 16},
		}, 15),
	}
}

func (m IncomesModel) Title() string { return "Extra income" }

func (m IncomesModel) ShortHelp() string {
	if m.state != incomeStateBrowse {
		return "Enter: confirm | Esc: cancel"
	}

	return "Esc: back | n: new | e: edit | x: delete | r: refresh"
}

func (m IncomesModel) Init() tea.Cmd {
	return m.deps.refresh(m.scope, cache.KindExtraIncomes, cache.KindBanks, cache.KindCategories)
}

func (m IncomesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshedMsg:
		m.fillTable()
		if msg.err != nil && !Closed(msg.err) {
			return m, ToastError(msg.err)
		}

		return m, nil

	case incomeSavedMsg:
		m.busy = false
		m.closeForm()

		refresh := m.deps.refresh(m.scope, cache.KindExtraIncomes, cache.KindBanks)
		if msg.err != nil {
			return m, tea.Batch(refresh, ToastError(msg.err))
		}

		return m, tea.Batch(refresh, Toast(msg.done))

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state != incomeStateBrowse {
		return m.updateForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, Back
		case "r":
			return m, m.Init()
		case "n":
			return m.openForm(nil)
		case "e":
			if inc := m.selected(); inc != nil {
				return m.openForm(inc)
			}
		case "x":
			if inc := m.selected(); inc != nil {
				return m.openDelete(inc)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m IncomesModel) selected() *income.ExtraIncome {
	items := m.deps.Store.ExtraIncomes.Items()

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(items) {
		return nil
	}

	return items[idx]
}

func (m IncomesModel) openForm(inc *income.ExtraIncome) (tea.Model, tea.Cmd) {
	*m.fields = incomeFields{}
	m.editing = inc

	if inc != nil {
		m.fields.description = inc.Description
		m.fields.amount = inc.Amount.String()

		if inc.BankID != nil {
			m.fields.bankID = *inc.BankID
		}
	}

	options := []huh.Option[uuid.UUID]{huh.NewOption("No bank", uuid.Nil)}
	for _, b := range m.deps.Store.Banks.Items() {
		options = append(options, huh.NewOption(b.Name, b.ID))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.fields.description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.fields.amount).
				Validate(validPositive),
			huh.NewSelect[uuid.UUID]().
				Key("bank").
				Title("Bank").
				Options(options...).
				Value(&m.fields.bankID),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = incomeStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m IncomesModel) openDelete(inc *income.ExtraIncome) (tea.Model, tea.Cmd) {
	*m.fields = incomeFields{}
	m.editing = inc

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", inc.Description)).
				Description("The amount is taken back from its bank.").
				Value(&m.fields.confirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = incomeStateConfirmDelete
	m.table.Blur()

	return m, m.form.Init()
}

func (m *IncomesModel) closeForm() {
	m.state = incomeStateBrowse
	m.form = nil
	m.editing = nil
	m.table.Focus()
}

func (m IncomesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc && !m.busy {
		m.closeForm()
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == incomeStateConfirmDelete && !m.fields.confirm {
		m.closeForm()
		return m, nil
	}

	m.busy = true

	return m, m.saveCmd()
}

func (m IncomesModel) View() string {
	content := boxed(m.table.View())

	if m.form != nil {
		title := "New income"
		if m.editing != nil {
			title = "Edit " + m.editing.Description
		}

		body := m.form.View()
		if m.busy {
			body = "Saving..."
		}

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel(title, body))
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *IncomesModel) fillTable() {
	items := m.deps.Store.ExtraIncomes.Items()

	rows := make([]table.Row, 0, len(items))
	for _, inc := range items {
		rows = append(rows, table.Row{
			inc.Description,
			FormatAmount(inc.Amount),
			m.deps.Store.BankName(inc.BankID),
			m.deps.Store.CategoryName(inc.CategoryID),
		})
	}

	m.table.SetRows(rows)
}

type incomeSavedMsg struct {
	done string
	err  error
}

func (m IncomesModel) saveCmd() tea.Cmd {
	var (
		state  = m.state
		old    = m.editing
		desc   = strings.TrimSpace(m.fields.description)
		amount = parseInputAmount(m.fields.amount)
		bankID *uuid.UUID
	)

	if m.fields.bankID != uuid.Nil {
		bankID = new(m.fields.bankID)
	}

	return func() tea.Msg {
		ctx, cancel := m.scope.Request()
		defer cancel()

		incomes := m.deps.Ledger.Incomes

		switch {
		case state == incomeStateConfirmDelete:
			return incomeSavedMsg{done: "Income deleted", err: incomes.Delete(ctx, old)}
		case old == nil:
			_, err := incomes.Create(ctx, income.CreateParams{Description: desc, Amount: amount, BankID: bankID})
			return incomeSavedMsg{done: "Income created", err: err}
		default:
			_, err := incomes.Update(ctx, old, income.UpdateParams{Description: &desc, Amount: &amount, BankID: bankID})
			return incomeSavedMsg{done: "Income updated", err: err}
		}
	}
}
