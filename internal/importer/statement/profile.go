package statement

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle is one signed column ("-10,00").
	amountSingle amountMode = iota
	// amountSplit is separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of one bank export.
type Profile struct {
	Name         string
	Comma        rune
	DateCol      string
	DescCol      string
	DateLayouts  []string
	DecimalComma bool
	AmountMode   amountMode
	AmountCol    string // amountSingle
	DebitCol     string // amountSplit
	CreditCol    string // amountSplit
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

var brazilianDates = []string{"02/01/2006", "02/01/06", "2006-01-02"}

// profiles are tried in order; the more specific layouts come first.
var profiles = []Profile{
	{
		Name:        "nubank",
		Comma:       ',',
		DateCol:     "Data",
		DescCol:     "Descrição",
		DateLayouts: brazilianDates,
		AmountMode:  amountSingle,
		AmountCol:   "Valor",
	},
	{
		Name:         "cartao",
		Comma:        ';',
		DateCol:      "Data",
		DescCol:      "Descrição",
		DateLayouts:  brazilianDates,
		DecimalComma: true,
		AmountMode:   amountSplit,
		DebitCol:     "Débito",
		CreditCol:    "Crédito",
	},
	{
		Name:         "extrato",
		Comma:        ';',
		DateCol:      "Data",
		DescCol:      "Histórico",
		DateLayouts:  brazilianDates,
		DecimalComma: true,
		AmountMode:   amountSingle,
		AmountCol:    "Valor",
	},
	{
		Name:         "conta",
		Comma:        ';',
		DateCol:      "Data",
		DescCol:      "Descrição",
		DateLayouts:  brazilianDates,
		DecimalComma: true,
		AmountMode:   amountSingle,
		AmountCol:    "Valor",
	},
}
