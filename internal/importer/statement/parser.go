// Package statement reads bank statement CSV exports into transaction params.
package statement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/dates"
	enc "github.com/MrJamesThe3rd/finboard/internal/encoding"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
)

var ErrUnknownFormat = errors.New("no known statement format found")

// Statement is a parsed export. Rows carry no bank yet.
type Statement struct {
	Profile string
	Charset string
	Rows    []transaction.CreateParams
}

// Parser auto-detects the export layout by matching header names against
// the known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*Statement, error) {
	utf8r, charset, err := enc.UTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	for _, comma := range delimiters() {
		rows, err := readCSV(string(data), comma)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows, comma)
		if profile == nil {
			continue
		}

		parsed, err := parseRows(profile, cols, rows[headerIdx+1:], headerIdx)
		if err != nil {
			return nil, err
		}

		return &Statement{Profile: profile.Name, Charset: charset, Rows: parsed}, nil
	}

	return nil, ErrUnknownFormat
}

func delimiters() []rune {
	var out []rune
	for _, p := range profiles {
		if !slices.Contains(out, p.Comma) {
			out = append(out, p.Comma)
		}
	}

	return out
}

func readCSV(data string, comma rune) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile returns the first header row matching a profile for comma.
func detectProfile(rows [][]string, comma rune) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if profiles[i].Comma == comma && matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows skips rows without a date or a nonzero amount, which covers
// balance lines and page footers.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRow int) ([]transaction.CreateParams, error) {
	var out []transaction.CreateParams

	for i, row := range rows {
		rowNum := headerRow + i + 2

		date, ok := parseDate(cellValue(row, cols[p.DateCol]), p.DateLayouts)
		if !ok {
			continue
		}

		amount, typ, ok := rowAmount(p, cols, row)
		if !ok {
			continue
		}

		desc := cellValue(row, cols[p.DescCol])
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		out = append(out, transaction.CreateParams{
			Description: desc,
			Amount:      amount,
			Date:        date,
			Type:        typ,
		})
	}

	return out, nil
}

func parseDate(s string, layouts []string) (dates.Date, bool) {
	if s == "" {
		return dates.Date{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dates.Of(t), true
		}
	}

	return dates.Date{}, false
}

func rowAmount(p *Profile, cols colIndex, row []string) (decimal.Decimal, transaction.Type, bool) {
	switch p.AmountMode {
	case amountSingle:
		v, ok := amountAt(row, cols[p.AmountCol], p.DecimalComma)
		if !ok {
			return decimal.Zero, "", false
		}

		if v.IsNegative() {
			return v.Neg(), transaction.TypeWithdrawal, true
		}

		return v, transaction.TypeDeposit, true
	case amountSplit:
		if v, ok := amountAt(row, cols[p.DebitCol], p.DecimalComma); ok {
			return v.Abs(), transaction.TypeWithdrawal, true
		}

		if v, ok := amountAt(row, cols[p.CreditCol], p.DecimalComma); ok {
			return v.Abs(), transaction.TypeDeposit, true
		}
	}

	return decimal.Zero, "", false
}

func amountAt(row []string, idx int, decimalComma bool) (decimal.Decimal, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return decimal.Zero, false
	}

	v, err := parseAmount(s, decimalComma)
	if err != nil || v.IsZero() {
		return decimal.Zero, false
	}

	return v, true
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
