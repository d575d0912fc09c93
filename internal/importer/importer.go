// Package importer turns bank statement exports into transactions on the backend.
package importer

import (
	"context"
	"io"

	"github.com/MrJamesThe3rd/finboard/internal/importer/statement"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
)

type Parser interface {
	Parse(r io.Reader) (*statement.Statement, error)
}

type Transactions interface {
	Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)
}
