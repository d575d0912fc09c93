package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/expense"
)

func (s *Server) expenseRoutes(r chi.Router) {
	r.Get("/", s.listExpenses)
	r.Post("/", s.createExpense)
	r.Get("/{id}", s.getExpense)
	r.Put("/{id}", s.updateExpense)
	r.Delete("/{id}", s.deleteExpense)
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)

	out := make([]*expense.Expense, 0, len(t.expenses.order))
	for _, rec := range t.expenses.list() {
		out = append(out, t.renderExpense(rec))
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var req expense.CreateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)
	if !exists(&t.categories, req.CategoryID) {
		notFound(w, "category")
		return
	}

	if !exists(&t.banks, req.BankID) {
		notFound(w, "bank")
		return
	}

	date := req.ExpenseDate
	if date.IsZero() {
		date = s.today()
	}

	rec := &expenseRecord{
		Expense: expense.Expense{
			ID:          uuid.New(),
			Name:        req.Name,
			Description: req.Description,
			Value:       req.Value,
			ExpenseDate: date,
			CreatedAt:   s.now(),
		},
		categoryID: req.CategoryID,
		bankID:     req.BankID,
	}
	t.expenses.add(rec.ID, rec)

	writeJSON(w, http.StatusCreated, t.renderExpense(rec))
}

func (s *Server) getExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)

	rec, found := t.expenses.get(id)
	if !found {
		notFound(w, "expense")
		return
	}

	writeJSON(w, http.StatusOK, t.renderExpense(rec))
}

func (s *Server) updateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req expense.UpdateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)

	rec, found := t.expenses.get(id)
	if !found {
		notFound(w, "expense")
		return
	}

	if !exists(&t.categories, req.CategoryID) {
		notFound(w, "category")
		return
	}

	if !exists(&t.banks, req.BankID) {
		notFound(w, "bank")
		return
	}

	if req.Name != nil {
		rec.Name = *req.Name
	}

	if req.Description != nil {
		rec.Description = *req.Description
	}

	if req.Value != nil {
		rec.Value = *req.Value
	}

	if req.ExpenseDate != nil {
		rec.ExpenseDate = *req.ExpenseDate
	}

	if req.CategoryID != nil {
		rec.categoryID = req.CategoryID
	}

	if req.BankID != nil {
		rec.bankID = req.BankID
	}

	rec.UpdatedAt = touch(s.now())

	writeJSON(w, http.StatusOK, t.renderExpense(rec))
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tenantOf(r).expenses.remove(id) {
		notFound(w, "expense")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
