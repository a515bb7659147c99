// Package normalizer renders policies as the text block the assessment prompt embeds.
package normalizer

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"autopolicy/internal/domain"
)

var printer = message.NewPrinter(language.English)

// FromPolicy describes every field of p in a fixed, sectioned layout.
func FromPolicy(p domain.UserPolicy) domain.PolicyText {
	var b strings.Builder
	line := func(format string, args ...interface{}) {
		b.WriteString(fmt.Sprintf(format, args...))
		b.WriteByte('\n')
	}

	line("Auto Insurance Policy Details:")
	line("")
	line("Liability Coverage:")
	line("- Bodily Injury: $%s per person, $%s per accident", Currency(p.BodilyInjury.PerPerson), Currency(p.BodilyInjury.PerAccident))
	line("- Property Damage: $%s per accident", Currency(p.PropertyDamage))
	line("")
	line("Deductibles:")
	line("- Comprehensive: $%s", Currency(p.ComprehensiveDeductible))
	line("- Collision: $%s", Currency(p.CollisionDeductible))
	line("")
	line("Additional Coverage:")
	line("- Uninsured Motorist: $%s per person, $%s per accident", Currency(p.UninsuredMotorist.PerPerson), Currency(p.UninsuredMotorist.PerAccident))
	line("- Medical Payments: $%s", Currency(p.MedicalPayments))
	line("- Rental Reimbursement: $%s/day", Currency(p.RentalReimbursement))
	line("- Roadside Assistance: %s", yesNo(p.RoadsideAssistance))
	line("")
	line("Premium:")
	line("- Monthly: $%.2f", p.MonthlyPremium)
	b.WriteString(fmt.Sprintf("- Annual: $%.2f", p.AnnualPremium))

	return domain.PolicyText(b.String())
}

// FromText passes extracted document text through, trimmed.
func FromText(text string) domain.PolicyText {
	return domain.PolicyText(strings.TrimSpace(text))
}

// Currency formats an amount with thousands separators, keeping cents only when present.
func Currency(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.2f", v)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
