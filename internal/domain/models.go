package domain

import (
	"fmt"
	"math"
)

// SplitLimit is a per-person / per-accident coverage limit pair.
type SplitLimit struct {
	PerPerson   float64 `json:"per_person"`
	PerAccident float64 `json:"per_accident"`
}

// ReferenceProfile holds average auto policy terms used as the comparison baseline.
type ReferenceProfile struct {
	BodilyInjury            SplitLimit `json:"bodily_injury"`
	PropertyDamage          float64    `json:"property_damage"`
	ComprehensiveDeductible float64    `json:"comprehensive_deductible"`
	CollisionDeductible     float64    `json:"collision_deductible"`
	UninsuredMotorist       SplitLimit `json:"uninsured_motorist"`
	MedicalPayments         float64    `json:"medical_payments"`
	RentalReimbursement     float64    `json:"rental_reimbursement"`
	RoadsideAssistance      bool       `json:"roadside_assistance"`
	MonthlyPremium          float64    `json:"monthly_premium"`
	AnnualPremium           float64    `json:"annual_premium"`
}

// UserPolicy is the structured policy being analyzed. It has the same shape as
// ReferenceProfile; build it with NewUserPolicy so the annual premium stays derived.
type UserPolicy ReferenceProfile

// ManualEntry carries the form inputs of the manual-entry path. There is no annual
// premium field: it is always monthly * 12.
type ManualEntry struct {
	BodilyInjuryPerPerson      float64 `json:"bodily_injury_per_person" form:"bi_per_person"`
	BodilyInjuryPerAccident    float64 `json:"bodily_injury_per_accident" form:"bi_per_accident"`
	PropertyDamagePerAccident  float64 `json:"property_damage_per_accident" form:"pd_per_accident"`
	ComprehensiveDeductible    float64 `json:"comprehensive_deductible" form:"comp_deductible"`
	CollisionDeductible        float64 `json:"collision_deductible" form:"collision_deductible"`
	UninsuredMotoristPerPerson float64 `json:"uninsured_motorist_per_person" form:"um_per_person"`
	UninsuredMotoristPerAcc    float64 `json:"uninsured_motorist_per_accident" form:"um_per_accident"`
	MedicalPayments            float64 `json:"medical_payments" form:"med_payments"`
	RentalReimbursement        float64 `json:"rental_reimbursement" form:"rental_reimbursement"`
	RoadsideAssistance         bool    `json:"roadside_assistance" form:"roadside_assistance"`
	MonthlyPremium             float64 `json:"monthly_premium" form:"monthly_premium"`
}

// DefaultManualEntry returns the form defaults, which are the US averages.
func DefaultManualEntry() ManualEntry {
	return ManualEntry{
		BodilyInjuryPerPerson:      50000,
		BodilyInjuryPerAccident:    100000,
		PropertyDamagePerAccident:  25000,
		ComprehensiveDeductible:    500,
		CollisionDeductible:        500,
		UninsuredMotoristPerPerson: 25000,
		UninsuredMotoristPerAcc:    50000,
		MedicalPayments:            1000,
		RentalReimbursement:        30,
		RoadsideAssistance:         true,
		MonthlyPremium:             150,
	}
}

// NewUserPolicy builds a UserPolicy from manual-entry inputs.
func NewUserPolicy(e ManualEntry) UserPolicy {
	return UserPolicy{
		BodilyInjury: SplitLimit{
			PerPerson:   e.BodilyInjuryPerPerson,
			PerAccident: e.BodilyInjuryPerAccident,
		},
		PropertyDamage:          e.PropertyDamagePerAccident,
		ComprehensiveDeductible: e.ComprehensiveDeductible,
		CollisionDeductible:     e.CollisionDeductible,
		UninsuredMotorist: SplitLimit{
			PerPerson:   e.UninsuredMotoristPerPerson,
			PerAccident: e.UninsuredMotoristPerAcc,
		},
		MedicalPayments:     e.MedicalPayments,
		RentalReimbursement: e.RentalReimbursement,
		RoadsideAssistance:  e.RoadsideAssistance,
		MonthlyPremium:      e.MonthlyPremium,
		AnnualPremium:       e.MonthlyPremium * 12,
	}
}

// Validate rejects negative or non-finite amounts.
func (e ManualEntry) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"bodily_injury_per_person", e.BodilyInjuryPerPerson},
		{"bodily_injury_per_accident", e.BodilyInjuryPerAccident},
		{"property_damage_per_accident", e.PropertyDamagePerAccident},
		{"comprehensive_deductible", e.ComprehensiveDeductible},
		{"collision_deductible", e.CollisionDeductible},
		{"uninsured_motorist_per_person", e.UninsuredMotoristPerPerson},
		{"uninsured_motorist_per_accident", e.UninsuredMotoristPerAcc},
		{"medical_payments", e.MedicalPayments},
		{"rental_reimbursement", e.RentalReimbursement},
		{"monthly_premium", e.MonthlyPremium},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative amount", ErrInvalidPolicy, f.name)
		}
	}
	return nil
}

// PolicyText is the normalized policy description sent to the AI. It is never persisted.
type PolicyText string

// PolicyAnalysis is the AI's headline assessment.
type PolicyAnalysis struct {
	CoverageAdequacy  string `json:"coverage_adequacy"`
	CostEffectiveness string `json:"cost_effectiveness"`
	RiskLevel         string `json:"risk_level"`
}

// ComparisonNotes is the AI's narrative comparison with the reference values.
type ComparisonNotes struct {
	LiabilityAdequacy  string `json:"liability_adequacy"`
	DeductibleAnalysis string `json:"deductible_analysis"`
	PremiumAnalysis    string `json:"premium_analysis"`
}

// AssessmentResult is the outcome of one analysis request. It is created once and
// not mutated afterwards.
type AssessmentResult struct {
	PolicyAnalysis  PolicyAnalysis  `json:"policy_analysis"`
	Comparison      ComparisonNotes `json:"comparison"`
	Recommendations []string        `json:"recommendations"`
	RiskAssessment  string          `json:"risk_assessment"`
	OverallScore    int             `json:"overall_score"`
	Source          ResultSource    `json:"source"`
}

// IsDegraded reports whether the result came from the prose fallback.
func (r *AssessmentResult) IsDegraded() bool {
	return r.Source == SourceDegraded
}

// DisplayScore clamps the overall score into 1..10 for rendering.
func (r *AssessmentResult) DisplayScore() int {
	switch {
	case r.OverallScore < 1:
		return 1
	case r.OverallScore > 10:
		return 10
	default:
		return r.OverallScore
	}
}

// SeriesPoint is one labelled bar of a user-vs-reference chart.
type SeriesPoint struct {
	Label     string  `json:"label"`
	User      float64 `json:"user"`
	Reference float64 `json:"reference"`
}

// Difference returns user minus reference.
func (p SeriesPoint) Difference() float64 {
	return p.User - p.Reference
}

// ChartSeries is a titled group of bars.
type ChartSeries struct {
	Title  string        `json:"title"`
	Points []SeriesPoint `json:"points"`
}

// ComparisonChartData is derived from a UserPolicy and a ReferenceProfile.
type ComparisonChartData struct {
	UserLabel      string        `json:"user_label"`
	ReferenceLabel string        `json:"reference_label"`
	Premium        ChartSeries   `json:"premium"`
	Coverage       []ChartSeries `json:"coverage"`
}
