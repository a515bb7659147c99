// Package comparison derives user-vs-reference chart series from a policy.
package comparison

import "autopolicy/internal/domain"

// Series labels.
const (
	UserLabel      = "Your Policy"
	ReferenceLabel = "US Average"

	PremiumTitle        = "Premium Comparison"
	BodilyInjuryTitle   = "Bodily Injury Coverage"
	PropertyDamageTitle = "Property Damage Coverage"
	UninsuredTitle      = "Uninsured Motorist"
	MedicalTitle        = "Medical Payments"
)

// Compare builds the premium series and the four coverage series. It never fails.
func Compare(user domain.UserPolicy, ref domain.ReferenceProfile) domain.ComparisonChartData {
	return domain.ComparisonChartData{
		UserLabel:      UserLabel,
		ReferenceLabel: ReferenceLabel,
		Premium: domain.ChartSeries{
			Title: PremiumTitle,
			Points: []domain.SeriesPoint{
				{Label: "Monthly Premium", User: user.MonthlyPremium, Reference: ref.MonthlyPremium},
				{Label: "Annual Premium", User: user.AnnualPremium, Reference: ref.AnnualPremium},
			},
		},
		Coverage: []domain.ChartSeries{
			splitSeries(BodilyInjuryTitle, user.BodilyInjury, ref.BodilyInjury),
			{
				Title: PropertyDamageTitle,
				Points: []domain.SeriesPoint{
					{Label: "Per Accident", User: user.PropertyDamage, Reference: ref.PropertyDamage},
				},
			},
			splitSeries(UninsuredTitle, user.UninsuredMotorist, ref.UninsuredMotorist),
			{
				Title: MedicalTitle,
				Points: []domain.SeriesPoint{
					{Label: "Limit", User: user.MedicalPayments, Reference: ref.MedicalPayments},
				},
			},
		},
	}
}

func splitSeries(title string, user, ref domain.SplitLimit) domain.ChartSeries {
	return domain.ChartSeries{
		Title: title,
		Points: []domain.SeriesPoint{
			{Label: "Per Person", User: user.PerPerson, Reference: ref.PerPerson},
			{Label: "Per Accident", User: user.PerAccident, Reference: ref.PerAccident},
		},
	}
}
