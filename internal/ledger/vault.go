package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
	"github.com/MrJamesThe3rd/finboard/internal/vault"
)

var (
	ErrNoOriginBank      = errors.New("vault has no origin bank")
	ErrInsufficientFunds = errors.New("insufficient funds in vault")
	ErrNonPositive       = errors.New("amount must be greater than zero")
)

type Vaults interface {
	Update(ctx context.Context, id uuid.UUID, params vault.UpdateParams) (*vault.Vault, error)
}

// VaultMover moves money between a vault and its origin bank.
type VaultMover struct {
	vaults   Vaults
	txs      Transactions
	balances *BalanceKeeper
	logger   *slog.Logger
}

func NewVaultMover(vaults Vaults, txs Transactions, balances *BalanceKeeper, logger *slog.Logger) *VaultMover {
	if logger == nil {
		logger = slog.Default()
	}

	return &VaultMover{vaults: vaults, txs: txs, balances: balances, logger: logger}
}

// Deposit takes amount out of the origin bank and puts it into the vault.
func (m *VaultMover) Deposit(ctx context.Context, v *vault.Vault, amount decimal.Decimal) (*vault.Vault, error) {
	if err := m.check(v, amount); err != nil {
		return nil, err
	}

	return m.move(ctx, "vault deposit", v, amount, transaction.TypeDeposit)
}

// Withdraw takes amount out of the vault and returns it to the origin bank.
func (m *VaultMover) Withdraw(ctx context.Context, v *vault.Vault, amount decimal.Decimal) (*vault.Vault, error) {
	if err := m.check(v, amount); err != nil {
		return nil, err
	}

	if v.Amount.LessThan(amount) {
		return nil, fmt.Errorf("vault %s holds %s: %w", v.ID, v.Amount, ErrInsufficientFunds)
	}

	return m.move(ctx, "vault withdrawal", v, amount.Neg(), transaction.TypeWithdrawal)
}

func (m *VaultMover) check(v *vault.Vault, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositive
	}

	if v.BankID == nil {
		return fmt.Errorf("vault %s: %w", v.ID, ErrNoOriginBank)
	}

	return nil
}

// move shifts signed (positive into the vault) between the bank and the vault.
func (m *VaultMover) move(ctx context.Context, op string, v *vault.Vault, signed decimal.Decimal, typ transaction.Type) (*vault.Vault, error) {
	var updated *vault.Vault

	steps := []step{
		m.balances.adjust("move-bank-balance", *v.BankID, Delta{Balance: signed.Neg()}),
		{
			name: "update-vault",
			do: func(ctx context.Context) error {
				var err error
				updated, err = m.vaults.Update(ctx, v.ID, vault.UpdateParams{Amount: new(v.Amount.Add(signed))})

				return err
			},
			compensate: func(ctx context.Context) error {
				_, err := m.vaults.Update(ctx, v.ID, vault.UpdateParams{Amount: new(v.Amount)})
				return err
			},
		},
		recordTransaction(m.txs, transaction.CreateParams{
			Description: v.Name,
			Amount:      signed.Abs(),
			Date:        dates.Today(),
			Type:        typ,
			BankID:      v.BankID,
			VaultID:     &v.ID,
		}),
	}

	if err := run(ctx, m.logger, op, steps); err != nil {
		return nil, err
	}

	m.logger.Info("vault balance moved", "vault_id", v.ID, "amount", signed.String())

	return updated, nil
}
