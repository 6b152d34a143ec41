package domain

import (
	"strings"
	"time"
)

// Row is a raw spreadsheet row as returned by the data source: column
// header to cell value. Cells are untyped; numbers frequently arrive as
// formatted currency strings and dates in mixed formats.
type Row map[string]any

// Dataset names exposed by the spreadsheet API.
const (
	DatasetPerformance = "performanceData"
	DatasetInvoices    = "invoicesData"
	DatasetPayroll     = "payrollData"
	DatasetResources   = "financialResources"
	DatasetTerms       = "networkTerms"
)

// PerformanceRecord is one ad-network performance row: spend and revenue
// for a network/offer/buyer combination on a single day.
type PerformanceRecord struct {
	Date         time.Time `json:"date"`
	Network      string    `json:"network"`
	Offer        string    `json:"offer"`
	MediaBuyer   string    `json:"media_buyer"`
	AdSpend      float64   `json:"ad_spend"`
	TotalRevenue float64   `json:"total_revenue"`
}

// Margin is revenue minus spend.
func (r PerformanceRecord) Margin() float64 { return r.TotalRevenue - r.AdSpend }

// InvoiceRecord is a receivable from an ad network.
type InvoiceRecord struct {
	InvoiceNumber string    `json:"invoice_number"`
	Network       string    `json:"network"`
	Amount        float64   `json:"amount"`
	DueDate       time.Time `json:"due_date"`
	PeriodStart   time.Time `json:"period_start"`
	PeriodEnd     time.Time `json:"period_end"`
	Status        string    `json:"status"`
}

// Paid reports whether the invoice has already been settled and should
// no longer count as an inflow.
func (r InvoiceRecord) Paid() bool {
	switch strings.ToLower(strings.TrimSpace(r.Status)) {
	case "paid", "received":
		return true
	}
	return false
}

// PayrollRecord is a scheduled outgoing payment (salaries, contractors,
// tools, taxes).
type PayrollRecord struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"due_date"`
}

// Resource types.
const (
	ResourceCash   = "cash"
	ResourceCredit = "credit"
)

// FinancialResource is a bank account or a credit line.
type FinancialResource struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Balance     float64 `json:"balance"`
	CreditLimit float64 `json:"credit_limit"`
}

// Available returns spendable funds: the balance for cash accounts and
// the unused limit for credit lines.
func (r FinancialResource) Available() float64 {
	if r.Type == ResourceCredit {
		return r.CreditLimit - r.Balance
	}
	return r.Balance
}

// NetworkTerm describes how and when a network pays.
type NetworkTerm struct {
	Network        string `json:"network"`
	PayPeriod      string `json:"pay_period"`
	NetTerms       int    `json:"net_terms"`
	InvoiceLagDays int    `json:"invoice_lag_days"`
}

// LineItem is a dated cash movement used by the projection builder.
// Kind is the originating dataset, Ref an invoice number or description.
type LineItem struct {
	Kind    string    `json:"kind"`
	Ref     string    `json:"ref"`
	Party   string    `json:"party"`
	Amount  float64   `json:"amount"`
	DueDate time.Time `json:"due_date"`
}
