package ledger

import (
	"log/slog"

	"github.com/MrJamesThe3rd/finboard/internal/config"
	"github.com/MrJamesThe3rd/finboard/internal/entity"
)

// Ledger bundles the money-moving workflows over one set of services.
type Ledger struct {
	Balances *BalanceKeeper
	Settler  *Settler
	Incomes  *IncomeSync
	Vaults   *VaultMover
}

func New(set *entity.Set, mode config.SettlementMode, logger *slog.Logger) *Ledger {
	balances := NewBalanceKeeper(set.Banks)

	return &Ledger{
		Balances: balances,
		Settler:  NewSettler(mode, set.Bills, set.Receivables, set.Transactions, balances, logger),
		Incomes:  NewIncomeSync(set.ExtraIncomes, balances, logger),
		Vaults:   NewVaultMover(set.Vaults, set.Transactions, balances, logger),
	}
}
