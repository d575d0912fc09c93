package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/receivable"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
)

func (s *Server) receivableRoutes(r chi.Router) {
	r.Get("/", s.listReceivables)
	r.Post("/", s.createReceivable)
	r.Get("/{id}", s.getReceivable)
	r.Put("/{id}", s.updateReceivable)
	r.Delete("/{id}", s.deleteReceivable)
	r.Patch("/{id}/mark-as-received", s.markReceivableReceived)
}

func (s *Server) listReceivables(w http.ResponseWriter, r *http.Request) {
	status := receivable.Status(r.URL.Query().Get("status"))

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)

	out := make([]*receivable.Receivable, 0, len(t.receivables.order))
	for _, rec := range t.receivables.list() {
		if status != "" && rec.Status != status {
			continue
		}

		out = append(out, t.renderReceivable(rec))
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createReceivable(w http.ResponseWriter, r *http.Request) {
	var req receivable.CreateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)
	if !exists(&t.incomes, &req.ExtraIncomeID) {
		notFound(w, "extra income")
		return
	}

	if !exists(&t.banks, req.BankID) {
		notFound(w, "bank")
		return
	}

	rec := &receivableRecord{
		Receivable: receivable.Receivable{
			ID:                   uuid.New(),
			ReceiptMethod:        req.ReceiptMethod,
			DueDate:              req.DueDate,
			AutomaticBankReceipt: req.AutomaticBankReceipt,
			Status:               receivable.StatusPending,
			CreatedAt:            s.now(),
		},
		incomeID: req.ExtraIncomeID,
		bankID:   req.BankID,
	}
	t.receivables.add(rec.ID, rec)

	writeJSON(w, http.StatusCreated, t.renderReceivable(rec))
}

func (s *Server) withReceivable(w http.ResponseWriter, r *http.Request, fn func(t *tenant, rec *receivableRecord)) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)

	rec, found := t.receivables.get(id)
	if !found {
		notFound(w, "receivable")
		return
	}

	fn(t, rec)
}

func (s *Server) getReceivable(w http.ResponseWriter, r *http.Request) {
	s.withReceivable(w, r, func(t *tenant, rec *receivableRecord) {
		writeJSON(w, http.StatusOK, t.renderReceivable(rec))
	})
}

func (s *Server) updateReceivable(w http.ResponseWriter, r *http.Request) {
	var req receivable.UpdateParams
	if !decode(w, r, &req) {
		return
	}

	s.withReceivable(w, r, func(t *tenant, rec *receivableRecord) {
		if !exists(&t.banks, req.BankID) {
			notFound(w, "bank")
			return
		}

		if req.BankID != nil {
			rec.bankID = req.BankID
		}

		if req.ReceiptMethod != nil {
			rec.ReceiptMethod = *req.ReceiptMethod
		}

		if req.DueDate != nil {
			rec.DueDate = *req.DueDate
		}

		if req.AutomaticBankReceipt != nil {
			rec.AutomaticBankReceipt = *req.AutomaticBankReceipt
		}

		if req.Status != nil {
			rec.Status = *req.Status
		}

		if req.ReceivedDate != nil {
			rec.ReceivedDate = *req.ReceivedDate
		}

		rec.UpdatedAt = touch(s.now())

		writeJSON(w, http.StatusOK, t.renderReceivable(rec))
	})
}

func (s *Server) deleteReceivable(w http.ResponseWriter, r *http.Request) {
	s.withReceivable(w, r, func(t *tenant, rec *receivableRecord) {
		t.receivables.remove(rec.ID)
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) markReceivableReceived(w http.ResponseWriter, r *http.Request) {
	var req receivable.MarkAsReceivedParams
	if !decode(w, r, &req) {
		return
	}

	s.withReceivable(w, r, func(t *tenant, rec *receivableRecord) {
		if rec.Status.Settled() {
			writeError(w, http.StatusConflict, codeConflict, "receivable is already received")
			return
		}

		if req.BankID != nil {
			if !exists(&t.banks, req.BankID) {
				notFound(w, "bank")
				return
			}

			rec.bankID = req.BankID
		}

		view := t.renderReceivable(rec)

		received := req.ReceivedDate
		if received.IsZero() {
			received = s.today()
		}

		if bankID := view.BankID(); bankID != nil && view.Amount().IsPositive() {
			if b, ok := t.banks.get(*bankID); ok {
				s.recordTransaction(t, transaction.CreateParams{
					Description: view.Description(),
					Amount:      view.Amount(),
					Date:        received,
					Type:        transaction.TypeDeposit,
					CategoryID:  view.CategoryID(),
					BankID:      bankID,
					ReferenceID: &rec.ID,
				})
				s.credit(b, view.Amount())
			}
		}

		rec.Status = view.StatusOn(received)
		rec.ReceivedDate = received
		rec.UpdatedAt = touch(s.now())

		writeJSON(w, http.StatusOK, t.renderReceivable(rec))
	})
}
