package statement_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/importer/statement"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
)

type want struct {
	date   dates.Date
	desc   string
	amount string
	typ    transaction.Type
}

func TestParser_Profiles(t *testing.T) {
	tests := []struct {
		name        string
		csv         string
		wantProfile string
		want        []want
	}{
		{
			name: "Nubank",
			csv: `Data,Valor,Identificador,Descrição
05/03/2026,-42.90,65e7f1aa-0000,Compra no débito - Padaria
06/03/2026,1500.00,65e7f1aa-0001,Transferência recebida - Cliente
`,
			wantProfile: "nubank",
			want: []want{
				{dates.New(2026, time.March, 5), "Compra no débito - Padaria", "42.9", transaction.TypeWithdrawal},
				{dates.New(2026, time.March, 6), "Transferência recebida - Cliente", "1500", transaction.TypeDeposit},
			},
		},
		{
			name: "Extrato",
			csv: `Extrato de conta corrente
Agência;0001;Conta;12345-6
Período;01/02/2026 a 28/02/2026

Data;Histórico;Documento;Valor;Saldo
03/02/2026;PIX ENVIADO ALUGUEL;000123;-1.850,00;3.150,00
10/02/2026;SALARIO;000124;7.200,35;10.350,35
28/02/2026;SALDO DO DIA;;;10.350,35
`,
			wantProfile: "extrato",
			want: []want{
				{dates.New(2026, time.February, 3), "PIX ENVIADO ALUGUEL", "1850", transaction.TypeWithdrawal},
				{dates.New(2026, time.February, 10), "SALARIO", "7200.35", transaction.TypeDeposit},
			},
		},
		{
			name: "Cartao",
			csv: `Fatura cartão final 8016
Data ;Descrição ;Débito ;Crédito ;
16/12/2025 ;UBER *TRIP ;47,91 ; ;
20/12/2025 ;ESTORNO LOJA ; ;25,00 ;
 ; ; ; Página 1/2 ;
`,
			wantProfile: "cartao",
			want: []want{
				{dates.New(2025, time.December, 16), "UBER *TRIP", "47.91", transaction.TypeWithdrawal},
				{dates.New(2025, time.December, 20), "ESTORNO LOJA", "25", transaction.TypeDeposit},
			},
		},
		{
			name: "ContaWithCurrencySymbol",
			csv: `Valor;Descrição;Data
R$ -10,00;MERCADO;2026-01-30
`,
			wantProfile: "conta",
			want: []want{
				{dates.New(2026, time.January, 30), "MERCADO", "10", transaction.TypeWithdrawal},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := statement.NewParser().Parse(strings.NewReader(tt.csv))
			require.NoError(t, err)
			assert.Equal(t, tt.wantProfile, st.Profile)
			require.Len(t, st.Rows, len(tt.want))

			for i, w := range tt.want {
				got := st.Rows[i]
				assert.True(t, w.date.Equal(got.Date), "row %d date %s", i, got.Date)
				assert.Equal(t, w.desc, got.Description)
				assert.Equal(t, w.amount, got.Amount.String())
				assert.Equal(t, w.typ, got.Type)
				assert.Nil(t, got.BankID)
			}
		})
	}
}

func TestParser_Latin1(t *testing.T) {
	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte("Data;Descrição;Valor\n30/01/2026;CAFÉ SÃO JOÃO;-10,00\n"))
	require.NoError(t, err)

	st, err := statement.NewParser().Parse(bytes.NewReader(latin1))
	require.NoError(t, err)
	require.Len(t, st.Rows, 1)

	assert.Equal(t, "CAFÉ SÃO JOÃO", st.Rows[0].Description)
	assert.NotEqual(t, "UTF-8", st.Charset)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr string
	}{
		{name: "Empty", csv: "", wantErr: "no known statement format"},
		{name: "UnknownHeader", csv: "Date;Memo;Amount\n01/01/2026;X;1,00\n", wantErr: "no known statement format"},
		{name: "MissingDescription", csv: "Data;Descrição;Valor\n30/01/2026;;-10,00\n", wantErr: "row 2: missing description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := statement.NewParser().Parse(strings.NewReader(tt.csv))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParser_HeaderOnly(t *testing.T) {
	st, err := statement.NewParser().Parse(strings.NewReader("Data;Descrição;Valor"))
	require.NoError(t, err)
	assert.Empty(t, st.Rows)
}

func TestParser_SkipsZeroAndFooterRows(t *testing.T) {
	csv := `Data;Descrição;Valor
30/01/2026;TARIFA ISENTA;0,00
30/01/2026;TRANSFERENCIA;-1.234.567,89
Totais;;-1.234.567,89
`

	st, err := statement.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, st.Rows, 1)
	assert.Equal(t, "1234567.89", st.Rows[0].Amount.String())
}
