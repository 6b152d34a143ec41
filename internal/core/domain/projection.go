package domain

import "time"

// ProjectionDay is one day of a cash projection. Balance is the running
// balance after applying the day's inflows and outflows.
type ProjectionDay struct {
	Date     time.Time  `json:"date"`
	Inflows  []LineItem `json:"inflows"`
	Outflows []LineItem `json:"outflows"`
	In       float64    `json:"in"`
	Out      float64    `json:"out"`
	Balance  float64    `json:"balance"`
}

// Net is the day's inflows minus outflows.
func (d ProjectionDay) Net() float64 { return d.In - d.Out }

// ProjectionWeek collapses seven consecutive projection days.
type ProjectionWeek struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	In      float64   `json:"in"`
	Out     float64   `json:"out"`
	Net     float64   `json:"net"`
	Closing float64   `json:"closing_balance"`
}

// ProjectionSummary holds headline figures of a projection.
type ProjectionSummary struct {
	StartingBalance  float64    `json:"starting_balance"`
	EndingBalance    float64    `json:"ending_balance"`
	TotalIn          float64    `json:"total_in"`
	TotalOut         float64    `json:"total_out"`
	LowestBalance    float64    `json:"lowest_balance"`
	LowestBalanceOn  time.Time  `json:"lowest_balance_on"`
	FirstNegativeDay *time.Time `json:"first_negative_day,omitempty"`
}
