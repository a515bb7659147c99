package assessment

import (
	"fmt"
	"strings"

	"autopolicy/internal/domain"
	"autopolicy/internal/normalizer"
)

// resultSchemaExample is the JSON shape the model is asked to reply with.
const resultSchemaExample = `{
    "policy_analysis": {
        "coverage_adequacy": "Brief assessment of coverage adequacy",
        "cost_effectiveness": "Analysis of cost vs. value",
        "risk_level": "Low/Medium/High risk assessment"
    },
    "comparison": {
        "liability_adequacy": "Comparison with US liability averages",
        "deductible_analysis": "Analysis of deductible levels",
        "premium_analysis": "Premium comparison with US averages"
    },
    "recommendations": [
        "Specific recommendation 1",
        "Specific recommendation 2",
        "Specific recommendation 3"
    ],
    "risk_assessment": "Detailed risk assessment",
    "overall_score": 7
}`

// BuildStructuredPrompt embeds the policy text, the reference figures for region and
// the single-JSON-object instruction.
func BuildStructuredPrompt(text domain.PolicyText, ref domain.ReferenceProfile, region string) string {
	var b strings.Builder
	b.WriteString("You are an expert auto insurance analyst. Analyze the following auto insurance policy ")
	fmt.Fprintf(&b, "information and provide a detailed comparison with %s averages.\n\n", region)
	b.WriteString("Policy Information:\n")
	b.WriteString(string(text))
	fmt.Fprintf(&b, "\n\n%s Averages for reference:\n", region)
	b.WriteString(referenceLines(ref))
	b.WriteString("\nPlease provide a detailed analysis in the following JSON format ONLY. ")
	b.WriteString("Do not include any other text before or after the JSON:\n")
	b.WriteString(resultSchemaExample)
	b.WriteString("\n\nIMPORTANT: Respond with ONLY valid JSON. No additional text, explanations, ")
	b.WriteString("or formatting outside the JSON structure. overall_score is an integer from 1 to 10.\n")
	return b.String()
}

// BuildDegradedPrompt asks for a short prose assessment with no format requirements.
func BuildDegradedPrompt(text domain.PolicyText) string {
	return fmt.Sprintf(`Analyze this auto insurance policy and provide a brief assessment:

%s

Provide a simple analysis covering:
1. Coverage adequacy
2. Cost effectiveness
3. Risk level
4. Key recommendations
`, text)
}

func referenceLines(ref domain.ReferenceProfile) string {
	c := normalizer.Currency
	lines := []string{
		fmt.Sprintf("- Liability Coverage: $%s/$%s bodily injury, $%s property damage",
			c(ref.BodilyInjury.PerPerson), c(ref.BodilyInjury.PerAccident), c(ref.PropertyDamage)),
		fmt.Sprintf("- Comprehensive Deductible: $%s", c(ref.ComprehensiveDeductible)),
		fmt.Sprintf("- Collision Deductible: $%s", c(ref.CollisionDeductible)),
		fmt.Sprintf("- Uninsured Motorist: $%s/$%s", c(ref.UninsuredMotorist.PerPerson), c(ref.UninsuredMotorist.PerAccident)),
		fmt.Sprintf("- Medical Payments: $%s", c(ref.MedicalPayments)),
		fmt.Sprintf("- Rental Reimbursement: $%s/day", c(ref.RentalReimbursement)),
		fmt.Sprintf("- Monthly Premium: $%s", c(ref.MonthlyPremium)),
		fmt.Sprintf("- Annual Premium: $%s", c(ref.AnnualPremium)),
	}
	return strings.Join(lines, "\n") + "\n"
}
