package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Degradation describes a single cell that could not be interpreted and
// was replaced by its zero value.
type Degradation struct {
	Dataset string
	Field   string
	Row     int
	Raw     any
}

// DecodeReport summarises one dataset conversion.
type DecodeReport struct {
	Dataset   string         `json:"dataset"`
	Rows      int            `json:"rows"`
	Dropped   int            `json:"dropped"`
	Defaulted map[string]int `json:"defaulted,omitempty"`
}

// Decoder converts raw rows into typed records at the ingestion boundary.
// Malformed cells never abort decoding: they degrade to zero values and
// are reported through OnDegrade (when set) and the returned DecodeReport.
// Blank cells are not reported, only malformed ones.
type Decoder struct {
	Location  *time.Location
	OnDegrade func(Degradation)
}

// NewDecoder returns a Decoder that resolves dates in loc.
func NewDecoder(loc *time.Location) *Decoder {
	if loc == nil {
		loc = time.UTC
	}
	return &Decoder{Location: loc}
}

type rowReader struct {
	d       *Decoder
	report  *DecodeReport
	row     Row
	idx     int
	dataset string
}

func (d *Decoder) reader(report *DecodeReport, row Row, idx int) rowReader {
	return rowReader{d: d, report: report, row: row, idx: idx, dataset: report.Dataset}
}

// lookup returns the first non-nil cell among the candidate headers.
// Header matching ignores case, spaces and underscores so "Ad Spend",
// "ad_spend" and "AdSpend" resolve to the same column.
func (r rowReader) lookup(names ...string) (any, string) {
	for _, n := range names {
		if v, ok := r.row[n]; ok && v != nil {
			return v, n
		}
	}
	for k, v := range r.row {
		if v == nil {
			continue
		}
		nk := normHeader(k)
		for _, n := range names {
			if nk == normHeader(n) {
				return v, n
			}
		}
	}
	return nil, names[0]
}

func normHeader(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "_", "")
}

func (r rowReader) degrade(field string, raw any) {
	if r.report.Defaulted == nil {
		r.report.Defaulted = map[string]int{}
	}
	r.report.Defaulted[field]++
	if r.d.OnDegrade != nil {
		r.d.OnDegrade(Degradation{Dataset: r.dataset, Field: field, Row: r.idx, Raw: raw})
	}
}

func (r rowReader) str(names ...string) string {
	v, _ := r.lookup(names...)
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case fmt.Stringer:
		return strings.TrimSpace(s.String())
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

func (r rowReader) amount(names ...string) float64 {
	v, field := r.lookup(names...)
	a := ParseAmountResult(v)
	if a.Defaulted && !a.Absent {
		r.degrade(field, v)
	}
	return a.Value
}

func (r rowReader) date(names ...string) time.Time {
	v, field := r.lookup(names...)
	if v == nil {
		return time.Time{}
	}
	var raw string
	switch s := v.(type) {
	case string:
		raw = s
	case time.Time:
		return Truncate(s, r.d.Location)
	case float64, float32, int, int64, json.Number:
		n, err := strconv.ParseFloat(fmt.Sprint(s), 64)
		if t, ok := SerialDate(n, r.d.Location); err == nil && ok {
			return t
		}
		r.degrade(field, v)
		return time.Time{}
	default:
		raw = fmt.Sprint(s)
	}
	if strings.TrimSpace(raw) == "" {
		return time.Time{}
	}
	t, ok := ParseDate(raw, r.d.Location)
	if !ok {
		r.degrade(field, v)
		return time.Time{}
	}
	return t
}

func (r rowReader) integer(names ...string) int {
	v, field := r.lookup(names...)
	if v == nil {
		return 0
	}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "net"))
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	a := ParseAmountResult(v)
	if a.Defaulted {
		if !a.Absent {
			r.degrade(field, v)
		}
		return 0
	}
	return int(a.Value)
}

func blank(row Row) bool {
	for _, v := range row {
		switch s := v.(type) {
		case nil:
		case string:
			if strings.TrimSpace(s) != "" {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Performance converts performance rows.
func (d *Decoder) Performance(rows []Row) ([]PerformanceRecord, DecodeReport) {
	rep := DecodeReport{Dataset: DatasetPerformance}
	out := make([]PerformanceRecord, 0, len(rows))
	for i, row := range rows {
		rep.Rows++
		if blank(row) {
			rep.Dropped++
			continue
		}
		r := d.reader(&rep, row, i)
		out = append(out, PerformanceRecord{
			Date:         r.date("Date"),
			Network:      r.str("Network"),
			Offer:        r.str("Offer"),
			MediaBuyer:   r.str("Media Buyer", "Buyer"),
			AdSpend:      r.amount("Ad Spend", "Spend"),
			TotalRevenue: r.amount("Total Revenue", "Revenue"),
		})
	}
	return out, rep
}

// Invoices converts invoice rows.
func (d *Decoder) Invoices(rows []Row) ([]InvoiceRecord, DecodeReport) {
	rep := DecodeReport{Dataset: DatasetInvoices}
	out := make([]InvoiceRecord, 0, len(rows))
	for i, row := range rows {
		rep.Rows++
		if blank(row) {
			rep.Dropped++
			continue
		}
		r := d.reader(&rep, row, i)
		out = append(out, InvoiceRecord{
			InvoiceNumber: r.str("InvoiceNumber", "Invoice Number", "Invoice"),
			Network:       r.str("Network"),
			Amount:        r.amount("Amount"),
			DueDate:       r.date("DueDate", "Due Date"),
			PeriodStart:   r.date("PeriodStart", "Period Start"),
			PeriodEnd:     r.date("PeriodEnd", "Period End"),
			Status:        r.str("Status"),
		})
	}
	return out, rep
}

// Payroll converts payroll rows.
func (d *Decoder) Payroll(rows []Row) ([]PayrollRecord, DecodeReport) {
	rep := DecodeReport{Dataset: DatasetPayroll}
	out := make([]PayrollRecord, 0, len(rows))
	for i, row := range rows {
		rep.Rows++
		if blank(row) {
			rep.Dropped++
			continue
		}
		r := d.reader(&rep, row, i)
		out = append(out, PayrollRecord{
			Type:        r.str("Type"),
			Description: r.str("Description"),
			Amount:      r.amount("Amount"),
			DueDate:     r.date("DueDate", "Due Date"),
		})
	}
	return out, rep
}

// Resources converts cash account and credit line rows. A row without a
// recognisable type is a credit line when it carries a limit, otherwise
// cash.
func (d *Decoder) Resources(rows []Row) ([]FinancialResource, DecodeReport) {
	rep := DecodeReport{Dataset: DatasetResources}
	out := make([]FinancialResource, 0, len(rows))
	for i, row := range rows {
		rep.Rows++
		if blank(row) {
			rep.Dropped++
			continue
		}
		r := d.reader(&rep, row, i)
		res := FinancialResource{
			Name:        r.str("Name", "Account", "Resource"),
			Balance:     r.amount("Balance", "Current Balance"),
			CreditLimit: r.amount("Credit Limit", "Limit"),
		}
		switch t := r.str("Type"); {
		case creditType(t):
			res.Type = ResourceCredit
		case t == "" && res.CreditLimit > 0:
			res.Type = ResourceCredit
		default:
			res.Type = ResourceCash
		}
		out = append(out, res)
	}
	return out, rep
}

// creditType reports whether a resource type names a credit line. Words
// are matched whole, so "Local Bank" stays cash.
func creditType(t string) bool {
	words := strings.FieldsFunc(strings.ToLower(t), func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})
	for _, w := range words {
		switch w {
		case "credit", "loc", "heloc", "card":
			return true
		}
	}
	return false
}

// Terms converts network payment term rows.
func (d *Decoder) Terms(rows []Row) ([]NetworkTerm, DecodeReport) {
	rep := DecodeReport{Dataset: DatasetTerms}
	out := make([]NetworkTerm, 0, len(rows))
	for i, row := range rows {
		rep.Rows++
		if blank(row) {
			rep.Dropped++
			continue
		}
		r := d.reader(&rep, row, i)
		out = append(out, NetworkTerm{
			Network:        r.str("Network"),
			PayPeriod:      r.str("Pay Period", "PayPeriod"),
			NetTerms:       r.integer("Net Terms", "NetTerms", "Terms"),
			InvoiceLagDays: r.integer("Invoice Lag", "InvoiceLagDays", "Lag"),
		})
	}
	return out, rep
}
