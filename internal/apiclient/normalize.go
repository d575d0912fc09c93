package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// dateFields are the keys whose blank values the backend rejects; they are sent as null.
var dateFields = map[string]struct{}{
	"date":             {},
	"dueDate":          {},
	"paymentDate":      {},
	"receivedDate":     {},
	"expenseDate":      {},
	"transaction_date": {},
	"due_date":         {},
	"payment_date":     {},
	"received_date":    {},
	"expense_date":     {},
}

// encodeBody marshals body and rewrites blank date fields to null at any depth.
func encodeBody(body any) ([]byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("decoding request body: %w", err)
	}

	if !nullBlankDates(tree) {
		return raw, nil
	}

	out, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("encoding normalized body: %w", err)
	}

	return out, nil
}

// nullBlankDates walks v in place and reports whether anything changed.
func nullBlankDates(v any) bool {
	changed := false

	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			if s, ok := child.(string); ok && s == "" {
				if _, isDate := dateFields[k]; isDate {
					node[k] = nil
					changed = true

					continue
				}
			}

			if nullBlankDates(child) {
				changed = true
			}
		}
	case []any:
		for _, child := range node {
			if nullBlankDates(child) {
				changed = true
			}
		}
	}

	return changed
}
