package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/income"
)

func (s *Server) incomeRoutes(r chi.Router) {
	r.Get("/", s.listIncomes)
	r.Post("/", s.createIncome)
	r.Get("/{id}", s.getIncome)
	r.Put("/{id}", s.updateIncome)
	r.Delete("/{id}", s.deleteIncome)
	r.Post("/{id}/subtract", s.subtractIncome)
	r.Post("/{id}/add", s.addIncome)
	r.Post("/{id}/transfer", s.transferIncome)
}

func (s *Server) listIncomes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.tenantOf(r).incomes.list())
}

// Creating or editing an income never touches bank totals here; the client
// keeps the bank in step.
func (s *Server) createIncome(w http.ResponseWriter, r *http.Request) {
	var req income.CreateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)
	if !exists(&t.banks, req.BankID) {
		notFound(w, "bank")
		return
	}

	if !exists(&t.categories, req.CategoryID) {
		notFound(w, "category")
		return
	}

	inc := &income.ExtraIncome{
		ID:          uuid.New(),
		Description: req.Description,
		Amount:      req.Amount,
		BankID:      req.BankID,
		CategoryID:  req.CategoryID,
		CreatedAt:   s.now(),
	}
	t.incomes.add(inc.ID, inc)

	writeJSON(w, http.StatusCreated, inc)
}

func (s *Server) withIncome(w http.ResponseWriter, r *http.Request, fn func(t *tenant, inc *income.ExtraIncome)) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)

	inc, found := t.incomes.get(id)
	if !found {
		notFound(w, "extra income")
		return
	}

	fn(t, inc)
}

func (s *Server) getIncome(w http.ResponseWriter, r *http.Request) {
	s.withIncome(w, r, func(_ *tenant, inc *income.ExtraIncome) {
		writeJSON(w, http.StatusOK, inc)
	})
}

func (s *Server) updateIncome(w http.ResponseWriter, r *http.Request) {
	var req income.UpdateParams
	if !decode(w, r, &req) {
		return
	}

	s.withIncome(w, r, func(t *tenant, inc *income.ExtraIncome) {
		if !exists(&t.banks, req.BankID) {
			notFound(w, "bank")
			return
		}

		if req.Description != nil {
			inc.Description = *req.Description
		}

		if req.Amount != nil {
			inc.Amount = *req.Amount
		}

		if req.BankID != nil {
			inc.BankID = req.BankID
		}

		if req.CategoryID != nil {
			inc.CategoryID = req.CategoryID
		}

		inc.UpdatedAt = touch(s.now())

		writeJSON(w, http.StatusOK, inc)
	})
}

func (s *Server) deleteIncome(w http.ResponseWriter, r *http.Request) {
	s.withIncome(w, r, func(t *tenant, inc *income.ExtraIncome) {
		t.incomes.remove(inc.ID)
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) subtractIncome(w http.ResponseWriter, r *http.Request) {
	var req income.AmountParams
	if !decode(w, r, &req) {
		return
	}

	s.withIncome(w, r, func(_ *tenant, inc *income.ExtraIncome) {
		if inc.Amount.LessThan(req.Amount) {
			writeError(w, http.StatusBadRequest, codeValidation, "amount exceeds the recorded income")
			return
		}

		inc.Amount = inc.Amount.Sub(req.Amount)
		inc.UpdatedAt = touch(s.now())

		writeJSON(w, http.StatusOK, inc)
	})
}

func (s *Server) addIncome(w http.ResponseWriter, r *http.Request) {
	var req income.AmountParams
	if !decode(w, r, &req) {
		return
	}

	s.withIncome(w, r, func(_ *tenant, inc *income.ExtraIncome) {
		inc.Amount = inc.Amount.Add(req.Amount)
		inc.UpdatedAt = touch(s.now())

		writeJSON(w, http.StatusOK, inc)
	})
}

// transferIncome moves an income and its amount to another bank in one step.
func (s *Server) transferIncome(w http.ResponseWriter, r *http.Request) {
	var req income.TransferParams
	if !decode(w, r, &req) {
		return
	}

	s.withIncome(w, r, func(t *tenant, inc *income.ExtraIncome) {
		to, ok := t.banks.get(req.BankID)
		if !ok {
			notFound(w, "bank")
			return
		}

		if inc.BankID != nil {
			if from, ok := t.banks.get(*inc.BankID); ok {
				from.CurrentBalance = from.CurrentBalance.Sub(inc.Amount)
				from.TotalIncome = from.TotalIncome.Sub(inc.Amount)
				from.UpdatedAt = touch(s.now())
			}
		}

		s.credit(to, inc.Amount)

		inc.BankID = &to.ID
		inc.UpdatedAt = touch(s.now())

		writeJSON(w, http.StatusOK, inc)
	})
}
