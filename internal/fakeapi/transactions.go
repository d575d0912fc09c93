package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
)

func (s *Server) transactionRoutes(r chi.Router) {
	r.Get("/", s.listTransactions)
	r.Post("/", s.createTransaction)
	r.Get("/{id}", s.getTransaction)
	r.Put("/{id}", s.updateTransaction)
	r.Delete("/{id}", s.deleteTransaction)
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	match, err := transactionMatcher(q.Get("transaction_type"), q.Get("bank_id"), q.Get("vault_id"), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*transaction.Transaction, 0)
	for _, tx := range s.tenantOf(r).transactions.list() {
		if match(tx) {
			out = append(out, tx)
		}
	}

	writeJSON(w, http.StatusOK, out)
}

func transactionMatcher(typ, bankID, vaultID, start, end string) (func(*transaction.Transaction) bool, error) {
	var checks []func(*transaction.Transaction) bool

	if typ != "" {
		checks = append(checks, func(tx *transaction.Transaction) bool { return string(tx.Type) == typ })
	}

	for _, ref := range []struct {
		raw string
		get func(*transaction.Transaction) *uuid.UUID
	}{
		{bankID, func(tx *transaction.Transaction) *uuid.UUID { return tx.BankID }},
		{vaultID, func(tx *transaction.Transaction) *uuid.UUID { return tx.VaultID }},
	} {
		if ref.raw == "" {
			continue
		}

		id, err := uuid.Parse(ref.raw)
		if err != nil {
			return nil, err
		}

		get := ref.get
		checks = append(checks, func(tx *transaction.Transaction) bool {
			v := get(tx)
			return v != nil && *v == id
		})
	}

	if start != "" {
		d, err := dates.Parse(start)
		if err != nil {
			return nil, err
		}

		checks = append(checks, func(tx *transaction.Transaction) bool { return !tx.Date.Before(d) })
	}

	if end != "" {
		d, err := dates.Parse(end)
		if err != nil {
			return nil, err
		}

		checks = append(checks, func(tx *transaction.Transaction) bool { return !tx.Date.After(d) })
	}

	return func(tx *transaction.Transaction) bool {
		for _, check := range checks {
			if !check(tx) {
				return false
			}
		}

		return true
	}, nil
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req transaction.CreateParams
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

	if !exists(&t.vaults, req.VaultID) {
		notFound(w, "vault")
		return
	}

	tx := s.recordTransaction(t, req)

	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) recordTransaction(t *tenant, params transaction.CreateParams) *transaction.Transaction {
	tx := &transaction.Transaction{
		ID:          uuid.New(),
		Description: params.Description,
		Amount:      params.Amount,
		Date:        params.Date,
		Type:        params.Type,
		CategoryID:  params.CategoryID,
		BankID:      params.BankID,
		VaultID:     params.VaultID,
		ReferenceID: params.ReferenceID,
		CreatedAt:   s.now(),
	}
	t.transactions.add(tx.ID, tx)

	return tx
}

func (s *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, found := s.tenantOf(r).transactions.get(id)
	if !found {
		notFound(w, "transaction")
		return
	}

	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req transaction.UpdateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, found := s.tenantOf(r).transactions.get(id)
	if !found {
		notFound(w, "transaction")
		return
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}

	if req.Amount != nil {
		tx.Amount = *req.Amount
	}

	if req.Date != nil {
		tx.Date = *req.Date
	}

	if req.Type != nil {
		tx.Type = *req.Type
	}

	if req.CategoryID != nil {
		tx.CategoryID = req.CategoryID
	}

	if req.BankID != nil {
		tx.BankID = req.BankID
	}

	if req.VaultID != nil {
		tx.VaultID = req.VaultID
	}

	tx.UpdatedAt = touch(s.now())

	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tenantOf(r).transactions.remove(id) {
		notFound(w, "transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
