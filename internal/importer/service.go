package importer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/importer/statement"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
)

const defaultWorkers = 4

type Service struct {
	parser  Parser
	txs     Transactions
	workers int
	logger  *slog.Logger
}

func NewService(txs Transactions, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		parser:  statement.NewParser(),
		txs:     txs,
		workers: defaultWorkers,
		logger:  logger,
	}
}

// Result lists the transactions created, in statement order. Rows that
// failed are nil.
type Result struct {
	Profile string
	Charset string
	Created []*transaction.Transaction
}

func (s *Service) Preview(r io.Reader) (*statement.Statement, error) {
	return s.parser.Parse(r)
}

// Import creates one transaction per statement row on bankID. Each row is
// sent under a key derived from the bank and the file content, so importing
// the same file again replays instead of duplicating.
func (s *Service) Import(ctx context.Context, bankID uuid.UUID, r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	st, err := s.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	batch := uuid.NewSHA1(bankID, data)
	res := &Result{Profile: st.Profile, Charset: st.Charset, Created: make([]*transaction.Transaction, len(st.Rows))}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, row := range st.Rows {
		row.BankID = &bankID

		g.Go(func() error {
			key := uuid.NewSHA1(batch, []byte(strconv.Itoa(i))).String()

			tx, err := s.txs.Create(apiclient.WithIdempotencyKey(ctx, key), row)
			if err != nil {
				return fmt.Errorf("row %d (%s): %w", i+1, row.Description, err)
			}

			res.Created[i] = tx

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to import statement", "bank_id", bankID, "profile", st.Profile, "error", err)
		return res, err
	}

	s.logger.Info("statement imported", "bank_id", bankID, "profile", st.Profile, "charset", st.Charset, "rows", len(st.Rows))

	return res, nil
}
