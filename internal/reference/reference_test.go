package reference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopolicy/internal/domain"
	"autopolicy/internal/reference"
)

func TestUSAverage_Values(t *testing.T) {
	p := reference.USAverage()

	assert.Equal(t, 50000.0, p.BodilyInjury.PerPerson)
	assert.Equal(t, 100000.0, p.BodilyInjury.PerAccident)
	assert.Equal(t, 25000.0, p.PropertyDamage)
	assert.Equal(t, 500.0, p.ComprehensiveDeductible)
	assert.Equal(t, 500.0, p.CollisionDeductible)
	assert.Equal(t, 25000.0, p.UninsuredMotorist.PerPerson)
	assert.Equal(t, 50000.0, p.UninsuredMotorist.PerAccident)
	assert.Equal(t, 1000.0, p.MedicalPayments)
	assert.Equal(t, 30.0, p.RentalReimbursement)
	assert.True(t, p.RoadsideAssistance)
	assert.Equal(t, 150.0, p.MonthlyPremium)
	assert.Equal(t, 1800.0, p.AnnualPremium)
	assert.NoError(t, reference.Validate(p))
}

func TestUSAverage_ReturnsCopy(t *testing.T) {
	p := reference.USAverage()
	p.MonthlyPremium = 999

	assert.Equal(t, 150.0, reference.USAverage().MonthlyPremium)
}

func TestForState(t *testing.T) {
	p, err := reference.ForState("Florida")
	require.NoError(t, err)
	assert.Equal(t, 185.0, p.MonthlyPremium)
	assert.Equal(t, 2220.0, p.AnnualPremium)
	assert.Equal(t, 50000.0, p.BodilyInjury.PerPerson)
	assert.NoError(t, reference.Validate(p))

	p, err = reference.ForState("")
	require.NoError(t, err)
	assert.Equal(t, reference.USAverage(), p)
}

func TestForState_Unknown(t *testing.T) {
	_, err := reference.ForState("Atlantis")
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestRegion(t *testing.T) {
	assert.Equal(t, "US", reference.Region(""))
	assert.Equal(t, "Texas", reference.Region("Texas"))
}

func TestStates_Sorted(t *testing.T) {
	assert.Equal(t, []string{"California", "Florida", "New York", "Texas"}, reference.States())
}

func TestValidate_Rejects(t *testing.T) {
	p := reference.USAverage()
	p.AnnualPremium = 1000
	assert.Error(t, reference.Validate(p))

	p = reference.USAverage()
	p.MedicalPayments = -1
	assert.Error(t, reference.Validate(p))
}
