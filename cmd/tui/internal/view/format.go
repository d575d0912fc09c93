package view

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/vault"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatAmount renders d in the default currency, "R$ 1.234,56".
func FormatAmount(d decimal.Decimal) string {
	return FormatMoney(d, vault.DefaultCurrency)
}

// FormatMoney renders d in the ISO 4217 currency code, falling back to the
// bare number for codes x/text does not know.
func FormatMoney(d decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return printer.Sprintf("%v %s", d.StringFixed(2), code)
	}

	return printer.Sprintf("%v %v", currency.Symbol(unit), number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

func FormatDate(d dates.Date) string {
	if d.IsZero() {
		return "-"
	}

	return d.Format("02/01/2006")
}

func newTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func boxed(s string) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(s)
}

func panel(title, body string) string {
	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(48).
		Render(title + "\n\n" + body)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func faint(s string) string {
	return lipgloss.NewStyle().Faint(true).Render(s)
}
