package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/cache"
	"github.com/MrJamesThe3rd/finboard/internal/importer"
	"github.com/MrJamesThe3rd/finboard/internal/importer/statement"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateBankSelect importState = iota
	importStateFilePick
	importStatePreview
	importStateImporting
	importStateResult
)

// ImportModel loads a bank statement export as transactions of one bank.
type ImportModel struct {
	CommonModel
	deps  Deps
	scope Scope

	state      importState
	filePicker filepicker.Model
	bankCursor int
	bank       *bank.Bank

	path    string
	preview *statement.Statement
	rows    table.Model

	status string
	err    error
}

func NewImportModel(deps Deps, scope Scope) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		deps:       deps,
		scope:      scope,
		filePicker: fp,
		rows: newTable([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Type", Width: 11},
			{Title: "Amount", Width: 16},
			{Title: "Description", Width: 40},
		}, 12),
	}
}

func (m ImportModel) Title() string { return "Import statement" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStatePreview {
		return "Enter: import | Esc: pick another file"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.deps.refresh(m.scope, cache.KindBanks)
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshedMsg:
		if msg.err != nil && !Closed(msg.err) {
			return m, ToastError(msg.err)
		}

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		switch m.state {
		case importStateBankSelect:
			return m.updateBankSelect(msg)
		case importStatePreview:
			if msg.Type == tea.KeyEnter {
				m.state = importStateImporting
				m.status = fmt.Sprintf("Importing %d rows into %s...", len(m.preview.Rows), m.bank.Name)

				return m, m.importCmd()
			}

			var cmd tea.Cmd
			m.rows, cmd = m.rows.Update(msg)

			return m, cmd
		}

	case previewMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.preview = msg.statement
		m.state = importStatePreview
		m.fillPreview()

		return m, nil

	case importResultMsg:
		m.state = importStateResult
		m.err = msg.err

		refresh := m.deps.refresh(m.scope, cache.KindTransactions)
		if msg.err != nil {
			m.status = describe(msg.err)
			return m, refresh
		}

		m.status = fmt.Sprintf("Imported %d transactions (%s, %s).", len(msg.result.Created), msg.result.Profile, msg.result.Charset)

		return m, refresh
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.path = path
		m.status = fmt.Sprintf("Reading %s...", path)

		return m, m.previewCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick:
		m.state = importStateBankSelect
		return m, nil
	case importStatePreview, importStateResult:
		m.state = importStateFilePick
		m.preview = nil
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	case importStateImporting:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateBankSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	banks := m.deps.Store.Banks.Items()

	switch msg.Type {
	case tea.KeyUp:
		if m.bankCursor > 0 {
			m.bankCursor--
		}
	case tea.KeyDown:
		if m.bankCursor < len(banks)-1 {
			m.bankCursor++
		}
	case tea.KeyEnter:
		if m.bankCursor >= len(banks) {
			return m, nil
		}

		m.bank = banks[m.bankCursor]
		m.state = importStateFilePick

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	style := lipgloss.NewStyle().Padding(2)

	switch m.state {
	case importStateBankSelect:
		return style.Render(m.viewBankSelect())
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select statement for %s:\n\n%s", m.bank.Name, m.filePicker.View()),
		)
	case importStatePreview:
		header := fmt.Sprintf("%s: %d rows, format %s, %s", m.path, len(m.preview.Rows), activeStyle(m.preview.Profile), m.preview.Charset)
		return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + boxed(m.rows.View()))
	case importStateImporting:
		return style.Render(m.status)
	case importStateResult:
		color := lipgloss.Color("46")
		if m.err != nil {
			color = lipgloss.Color("196")
		}

		return style.Render(lipgloss.NewStyle().Foreground(color).Render(m.status) + "\n\n(Esc to go back)")
	}

	return ""
}

func (m ImportModel) viewBankSelect() string {
	banks := m.deps.Store.Banks.Items()
	if len(banks) == 0 {
		return "No banks yet. Create one first.\n\n(Esc to go back)"
	}

	s := "Import into bank:\n\n"

	for i, b := range banks {
		cursor := " "
		if i == m.bankCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, b.Name)
	}

	return s
}

func (m *ImportModel) fillPreview() {
	rows := make([]table.Row, 0, len(m.preview.Rows))
	for _, r := range m.preview.Rows {
		rows = append(rows, table.Row{FormatDate(r.Date), string(r.Type), FormatAmount(r.Amount), r.Description})
	}

	m.rows.SetRows(rows)
}

type previewMsg struct {
	statement *statement.Statement
	err       error
}

func (m ImportModel) previewCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return previewMsg{err: err}
		}
		defer f.Close()

		st, err := m.deps.Importer.Preview(f)

		return previewMsg{statement: st, err: err}
	}
}

type importResultMsg struct {
	result *importer.Result
	err    error
}

func (m ImportModel) importCmd() tea.Cmd {
	path := m.path
	bankID := m.bank.ID

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(m.scope.ctx, importTimeout)
		defer cancel()

		result, err := m.deps.Importer.Import(ctx, bankID, f)

		return importResultMsg{result: result, err: err}
	}
}
