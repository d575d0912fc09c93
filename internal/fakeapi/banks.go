package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
)

func (s *Server) bankRoutes(r chi.Router) {
	r.Get("/", s.listBanks)
	r.Post("/", s.createBank)
	r.Get("/metrics", s.bankMetrics)
	r.Post("/transfer", s.transferBetweenBanks)
	r.Post("/add-money", s.addMoneyToAllBanks)
	r.Get("/{id}", s.getBank)
	r.Put("/{id}", s.updateBank)
	r.Delete("/{id}", s.deleteBank)
	r.Post("/{id}/add-money", s.addMoney)
	r.Post("/{id}/remove-money", s.removeMoney)
	r.Post("/{id}/clear-incomes", s.clearIncomes)
	r.Post("/{id}/clear-expenses", s.clearExpenses)
}

func (s *Server) listBanks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.tenantOf(r).banks.list())
}

func (s *Server) createBank(w http.ResponseWriter, r *http.Request) {
	var req bank.CreateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := &bank.Bank{
		ID:             uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		CurrentBalance: req.CurrentBalance,
		CreatedAt:      s.now(),
	}
	s.tenantOf(r).banks.add(b.ID, b)

	writeJSON(w, http.StatusCreated, b)
}

// withBank runs fn on the bank named by the path while holding the lock.
func (s *Server) withBank(w http.ResponseWriter, r *http.Request, fn func(t *tenant, b *bank.Bank)) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)

	b, found := t.banks.get(id)
	if !found {
		notFound(w, "bank")
		return
	}

	fn(t, b)
}

func (s *Server) getBank(w http.ResponseWriter, r *http.Request) {
	s.withBank(w, r, func(_ *tenant, b *bank.Bank) {
		writeJSON(w, http.StatusOK, b)
	})
}

func (s *Server) updateBank(w http.ResponseWriter, r *http.Request) {
	var req bank.UpdateParams
	if !decode(w, r, &req) {
		return
	}

	s.withBank(w, r, func(_ *tenant, b *bank.Bank) {
		if req.Name != nil {
			b.Name = *req.Name
		}

		if req.Description != nil {
			b.Description = *req.Description
		}

		if req.CurrentBalance != nil {
			b.CurrentBalance = *req.CurrentBalance
		}

		if req.TotalIncome != nil {
			b.TotalIncome = *req.TotalIncome
		}

		if req.TotalExpense != nil {
			b.TotalExpense = *req.TotalExpense
		}

		b.UpdatedAt = touch(s.now())

		writeJSON(w, http.StatusOK, b)
	})
}

func (s *Server) deleteBank(w http.ResponseWriter, r *http.Request) {
	s.withBank(w, r, func(t *tenant, b *bank.Bank) {
		t.banks.remove(b.ID)
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) addMoney(w http.ResponseWriter, r *http.Request) {
	var req bank.AmountParams
	if !decode(w, r, &req) {
		return
	}

	s.withBank(w, r, func(_ *tenant, b *bank.Bank) {
		s.credit(b, req.Amount)
		writeJSON(w, http.StatusOK, b)
	})
}

func (s *Server) removeMoney(w http.ResponseWriter, r *http.Request) {
	var req bank.AmountParams
	if !decode(w, r, &req) {
		return
	}

	s.withBank(w, r, func(_ *tenant, b *bank.Bank) {
		s.debit(b, req.Amount)
		writeJSON(w, http.StatusOK, b)
	})
}

func (s *Server) clearIncomes(w http.ResponseWriter, r *http.Request) {
	s.withBank(w, r, func(_ *tenant, b *bank.Bank) {
		b.TotalIncome = decimal.Zero
		b.UpdatedAt = touch(s.now())
		writeJSON(w, http.StatusOK, b)
	})
}

func (s *Server) clearExpenses(w http.ResponseWriter, r *http.Request) {
	s.withBank(w, r, func(_ *tenant, b *bank.Bank) {
		b.TotalExpense = decimal.Zero
		b.UpdatedAt = touch(s.now())
		writeJSON(w, http.StatusOK, b)
	})
}

func (s *Server) addMoneyToAllBanks(w http.ResponseWriter, r *http.Request) {
	var req bank.AmountParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	banks := s.tenantOf(r).banks.list()
	for _, b := range banks {
		s.credit(b, req.Amount)
	}

	writeJSON(w, http.StatusOK, banks)
}

func (s *Server) transferBetweenBanks(w http.ResponseWriter, r *http.Request) {
	var req bank.TransferParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)

	from, ok := t.banks.get(req.FromBankID)
	if !ok {
		notFound(w, "source bank")
		return
	}

	to, ok := t.banks.get(req.ToBankID)
	if !ok {
		notFound(w, "destination bank")
		return
	}

	now := s.now()
	from.CurrentBalance = from.CurrentBalance.Sub(req.Amount)
	from.UpdatedAt = touch(now)
	to.CurrentBalance = to.CurrentBalance.Add(req.Amount)
	to.UpdatedAt = touch(now)

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) bankMetrics(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := bank.Metrics{}
	for _, b := range s.tenantOf(r).banks.list() {
		m.TotalBalance = m.TotalBalance.Add(b.CurrentBalance)
		m.TotalIncome = m.TotalIncome.Add(b.TotalIncome)
		m.TotalExpense = m.TotalExpense.Add(b.TotalExpense)
		m.BankCount++
	}

	writeJSON(w, http.StatusOK, m)
}

func (s *Server) credit(b *bank.Bank, amount decimal.Decimal) {
	b.CurrentBalance = b.CurrentBalance.Add(amount)
	b.TotalIncome = b.TotalIncome.Add(amount)
	b.UpdatedAt = touch(s.now())
}

func (s *Server) debit(b *bank.Bank, amount decimal.Decimal) {
	b.CurrentBalance = b.CurrentBalance.Sub(amount)
	b.TotalExpense = b.TotalExpense.Add(amount)
	b.UpdatedAt = touch(s.now())
}
