// Package reference holds the fixed average policy terms used as comparison baselines.
// Source: National Association of Insurance Commissioners (NAIC) and industry reports.
package reference

import (
	"fmt"
	"sort"

	"autopolicy/internal/domain"
)

// statePremiums holds state-specific premium averages that override the US average.
var statePremiums = map[string]struct{ monthly, annual float64 }{
	"California": {175, 2100},
	"Texas":      {165, 1980},
	"Florida":    {185, 2220},
	"New York":   {195, 2340},
}

// USAverage returns the US-average reference profile. Each call returns a fresh copy.
func USAverage() domain.ReferenceProfile {
	return domain.ReferenceProfile{
		BodilyInjury:            domain.SplitLimit{PerPerson: 50000, PerAccident: 100000},
		PropertyDamage:          25000,
		ComprehensiveDeductible: 500,
		CollisionDeductible:     500,
		UninsuredMotorist:       domain.SplitLimit{PerPerson: 25000, PerAccident: 50000},
		MedicalPayments:         1000,
		RentalReimbursement:     30,
		RoadsideAssistance:      true,
		MonthlyPremium:          150,
		AnnualPremium:           1800,
	}
}

// ForState returns the US average with the state's premium averages applied.
// An empty name yields the plain US average.
func ForState(state string) (domain.ReferenceProfile, error) {
	profile := USAverage()
	if state == "" {
		return profile, nil
	}
	p, ok := statePremiums[state]
	if !ok {
		return domain.ReferenceProfile{}, fmt.Errorf("%w: %s", domain.ErrUnknownState, state)
	}
	profile.MonthlyPremium = p.monthly
	profile.AnnualPremium = p.annual
	return profile, nil
}

// Region names the area a profile averages over: the state, or "US" for the
// national average.
func Region(state string) string {
	if state == "" {
		return "US"
	}
	return state
}

// States lists the states with their own premium averages, sorted by name.
func States() []string {
	names := make([]string, 0, len(statePremiums))
	for name := range statePremiums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that a profile is loadable: amounts are non-negative and the
// annual premium is twelve monthly premiums.
func Validate(p domain.ReferenceProfile) error {
	amounts := map[string]float64{
		"bodily_injury.per_person":        p.BodilyInjury.PerPerson,
		"bodily_injury.per_accident":      p.BodilyInjury.PerAccident,
		"property_damage":                 p.PropertyDamage,
		"comprehensive_deductible":        p.ComprehensiveDeductible,
		"collision_deductible":            p.CollisionDeductible,
		"uninsured_motorist.per_person":   p.UninsuredMotorist.PerPerson,
		"uninsured_motorist.per_accident": p.UninsuredMotorist.PerAccident,
		"medical_payments":                p.MedicalPayments,
		"rental_reimbursement":            p.RentalReimbursement,
		"monthly_premium":                 p.MonthlyPremium,
		"annual_premium":                  p.AnnualPremium,
	}
	for name, v := range amounts {
		if v < 0 {
			return fmt.Errorf("reference %s is negative: %v", name, v)
		}
	}
	if p.AnnualPremium != p.MonthlyPremium*12 {
		return fmt.Errorf("reference annual premium %v is not 12 x monthly %v", p.AnnualPremium, p.MonthlyPremium)
	}
	return nil
}
