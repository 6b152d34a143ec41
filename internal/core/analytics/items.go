package analytics

import (
	"strings"

	"perf-bi/internal/core/domain"
)

// InvoiceItems turns unpaid invoices into projection inflows.
func InvoiceItems(invoices []domain.InvoiceRecord) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Paid() {
			continue
		}
		out = append(out, domain.LineItem{
			Kind:    domain.DatasetInvoices,
			Ref:     inv.InvoiceNumber,
			Party:   inv.Network,
			Amount:  inv.Amount,
			DueDate: inv.DueDate,
		})
	}
	return out
}

// PayrollItems turns payroll rows into projection outflows. Amounts are
// taken as absolute values since sheets record them with either sign.
func PayrollItems(rows []domain.PayrollRecord) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(rows))
	for _, p := range rows {
		amt := p.Amount
		if amt < 0 {
			amt = -amt
		}
		ref := p.Description
		if ref == "" {
			ref = p.Type
		}
		out = append(out, domain.LineItem{
			Kind:    domain.DatasetPayroll,
			Ref:     ref,
			Party:   strings.TrimSpace(p.Type),
			Amount:  amt,
			DueDate: p.DueDate,
		})
	}
	return out
}
