package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/bill"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
)

func (s *Server) billRoutes(r chi.Router) {
	r.Get("/", s.listBills)
	r.Post("/", s.createBill)
	r.Get("/{id}", s.getBill)
	r.Put("/{id}", s.updateBill)
	r.Delete("/{id}", s.deleteBill)
	r.Patch("/{id}/mark-as-paid", s.markBillPaid)
}

func (s *Server) listBills(w http.ResponseWriter, r *http.Request) {
	status := bill.Status(r.URL.Query().Get("status"))

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)

	out := make([]*bill.Bill, 0, len(t.bills.order))
	for _, rec := range t.bills.list() {
		if status != "" && rec.Status != status {
			continue
		}

		out = append(out, t.renderBill(rec))
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createBill(w http.ResponseWriter, r *http.Request) {
	var req bill.CreateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)
	if !exists(&t.expenses, &req.ExpenseID) {
		notFound(w, "expense")
		return
	}

	if !exists(&t.banks, req.BankID) {
		notFound(w, "bank")
		return
	}

	rec := &billRecord{
		Bill: bill.Bill{
			ID:            uuid.New(),
			PaymentMethod: req.PaymentMethod,
			DueDate:       req.DueDate,
			AutoPay:       req.AutoPay,
			Status:        bill.StatusPending,
			CreatedAt:     s.now(),
		},
		expenseID: req.ExpenseID,
		bankID:    req.BankID,
	}
	t.bills.add(rec.ID, rec)

	writeJSON(w, http.StatusCreated, t.renderBill(rec))
}

func (s *Server) withBill(w http.ResponseWriter, r *http.Request, fn func(t *tenant, rec *billRecord)) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)

	rec, found := t.bills.get(id)
	if !found {
		notFound(w, "bill")
		return
	}

	fn(t, rec)
}

func (s *Server) getBill(w http.ResponseWriter, r *http.Request) {
	s.withBill(w, r, func(t *tenant, rec *billRecord) {
		writeJSON(w, http.StatusOK, t.renderBill(rec))
	})
}

func (s *Server) updateBill(w http.ResponseWriter, r *http.Request) {
	var req bill.UpdateParams
	if !decode(w, r, &req) {
		return
	}

	s.withBill(w, r, func(t *tenant, rec *billRecord) {
		if !exists(&t.banks, req.BankID) {
			notFound(w, "bank")
			return
		}

		if req.BankID != nil {
			rec.bankID = req.BankID
		}

		if req.PaymentMethod != nil {
			rec.PaymentMethod = *req.PaymentMethod
		}

		if req.DueDate != nil {
			rec.DueDate = *req.DueDate
		}

		if req.AutoPay != nil {
			rec.AutoPay = *req.AutoPay
		}

		if req.Status != nil {
			rec.Status = *req.Status
		}

		if req.PaymentDate != nil {
			rec.PaymentDate = *req.PaymentDate
		}

		rec.UpdatedAt = touch(s.now())

		writeJSON(w, http.StatusOK, t.renderBill(rec))
	})
}

func (s *Server) deleteBill(w http.ResponseWriter, r *http.Request) {
	s.withBill(w, r, func(t *tenant, rec *billRecord) {
		t.bills.remove(rec.ID)
		w.WriteHeader(http.StatusNoContent)
	})
}

// markBillPaid settles a bill atomically: the withdrawal, the bank debit and
// the status change happen together or not at all.
func (s *Server) markBillPaid(w http.ResponseWriter, r *http.Request) {
	var req bill.MarkAsPaidParams
	if !decode(w, r, &req) {
		return
	}

	s.withBill(w, r, func(t *tenant, rec *billRecord) {
		if rec.Status.Settled() {
			writeError(w, http.StatusConflict, codeConflict, "bill is already paid")
			return
		}

		if req.BankID != nil {
			if !exists(&t.banks, req.BankID) {
				notFound(w, "bank")
				return
			}

			rec.bankID = req.BankID
		}

		view := t.renderBill(rec)

		paid := req.PaymentDate
		if paid.IsZero() {
			paid = s.today()
		}

		if bankID := view.BankID(); bankID != nil && view.Amount().IsPositive() {
			if b, ok := t.banks.get(*bankID); ok {
				s.recordTransaction(t, transaction.CreateParams{
					Description: view.Description(),
					Amount:      view.Amount(),
					Date:        paid,
					Type:        transaction.TypeWithdrawal,
					CategoryID:  view.CategoryID(),
					BankID:      bankID,
					ReferenceID: &rec.ID,
				})
				s.debit(b, view.Amount())
			}
		}

		rec.Status = view.StatusOn(paid)
		rec.PaymentDate = paid
		rec.UpdatedAt = touch(s.now())

		writeJSON(w, http.StatusOK, t.renderBill(rec))
	})
}
