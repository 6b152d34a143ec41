package domain

// Recommendation is the scaling advice attached to an offer. The set is
// closed.
type Recommendation string

const (
	InsufficientData Recommendation = "INSUFFICIENT_DATA"
	DataReview       Recommendation = "DATA_REVIEW"
	Learning         Recommendation = "LEARNING"
	LowVolume        Recommendation = "LOW_VOLUME"
	ScaleBack        Recommendation = "SCALE_BACK"
	ScaleAggressive  Recommendation = "SCALE_AGGRESSIVE"
	ScaleCautious    Recommendation = "SCALE_CAUTIOUS"
	Maintain         Recommendation = "MAINTAIN"
	// Monitor is shown for groups that have revenue but no recorded spend.
	// The decision list never produces it.
	Monitor Recommendation = "MONITOR"
)

// RecommendationInfo is the presentation metadata of a category.
type RecommendationInfo struct {
	Code      Recommendation `json:"code"`
	Label     string         `json:"label"`
	Rationale string         `json:"rationale"`
	Action    string         `json:"action"`
}

var recommendationInfo = map[Recommendation]RecommendationInfo{
	InsufficientData: {
		Label:     "Insufficient Data",
		Rationale: "Fewer than 3 days of activity.",
		Action:    "Keep running at current budget until at least 3 days of data are available.",
	},
	DataReview: {
		Label:     "Review Data",
		Rationale: "Metrics look unusual: very high ROI on low volume, or erratic margins.",
		Action:    "Verify tracking and spend figures before changing budget.",
	},
	Learning: {
		Label:     "Learning Phase",
		Rationale: "Between 3 and 7 days of activity.",
		Action:    "Hold budget steady while the offer stabilises.",
	},
	LowVolume: {
		Label:     "Low Volume",
		Rationale: "Running for a week or more with total margin under $500.",
		Action:    "Test a modest budget increase or new creatives to find volume.",
	},
	ScaleBack: {
		Label:     "Scale Back",
		Rationale: "ROI under 10% or negative margin.",
		Action:    "Reduce budget 30-50% and review targeting, or pause.",
	},
	ScaleAggressive: {
		Label:     "Scale Aggressively",
		Rationale: "ROI of 50%+ with consistent, non-declining margins.",
		Action:    "Increase budget 30-50% and expand to similar audiences.",
	},
	ScaleCautious: {
		Label:     "Scale Cautiously",
		Rationale: "ROI of 25%+ with reasonable consistency or improving margins.",
		Action:    "Increase budget 10-20% and monitor daily.",
	},
	Maintain: {
		Label:     "Maintain",
		Rationale: "Moderate, stable performance.",
		Action:    "Keep current budget and optimise creatives.",
	},
	Monitor: {
		Label:     "Monitor",
		Rationale: "Revenue recorded without matching spend.",
		Action:    "Confirm spend attribution for this offer.",
	},
}

// Info returns the label, rationale and suggested action of r. Unknown
// values fall back to the Maintain metadata with their own code.
func (r Recommendation) Info() RecommendationInfo {
	info, ok := recommendationInfo[r]
	if !ok {
		info = recommendationInfo[Maintain]
	}
	info.Code = r
	return info
}

// Recommendations lists every category in display order.
func Recommendations() []Recommendation {
	return []Recommendation{
		ScaleAggressive, ScaleCautious, Maintain, Learning,
		LowVolume, DataReview, ScaleBack, InsufficientData, Monitor,
	}
}
