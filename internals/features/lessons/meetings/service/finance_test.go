package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	insmodel "educrm_backend/internals/features/crm/instructors/model"
	cyclemodel "educrm_backend/internals/features/lessons/cycles/model"
	regmodel "educrm_backend/internals/features/lessons/registrations/model"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func activeRegs(amounts ...float64) []regmodel.RegistrationModel {
	out := make([]regmodel.RegistrationModel, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, regmodel.RegistrationModel{
			RegistrationAmount: a,
			RegistrationStatus: regmodel.RegistrationStatusActive,
		})
	}
	return out
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 1.0, RoundCurrency(0.5))
	assert.Equal(t, 2.0, RoundCurrency(1.5))
	assert.Equal(t, 2.0, RoundCurrency(2.4))
	assert.Equal(t, 3.0, RoundCurrency(2.5))
	assert.Equal(t, 0.0, RoundCurrency(0))
	assert.Equal(t, 151.0, RoundCurrency(150.5))
}

func TestComputeRevenueInstitutionalFixed(t *testing.T) {
	cycle := &cyclemodel.CycleModel{
		CyclePricingMode:    cyclemodel.PricingInstitutionalFixed,
		CycleMeetingRevenue: fptr(500),
	}
	assert.Equal(t, 500.0, ComputeRevenue(cycle, nil))

	cycle.CycleMeetingRevenue = nil
	assert.Equal(t, 0.0, ComputeRevenue(cycle, nil))
}

func TestComputeRevenuePerChild(t *testing.T) {
	cycle := &cyclemodel.CycleModel{
		CyclePricingMode:     cyclemodel.PricingInstitutionalChild,
		CyclePricePerStudent: fptr(50),
	}

	// live registration count
	assert.Equal(t, 600.0, ComputeRevenue(cycle, activeRegs(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)))

	// declared count wins over the live count
	cycle.CycleStudentCount = iptr(8)
	assert.Equal(t, 400.0, ComputeRevenue(cycle, activeRegs(0, 0)))
}

func TestComputeRevenuePrivate(t *testing.T) {
	cycle := &cyclemodel.CycleModel{
		CyclePricingMode:   cyclemodel.PricingPrivate,
		CycleTotalMeetings: 10,
	}

	// 1000 + 505 over 10 meetings: 150.5 rounds half-up to 151
	assert.Equal(t, 151.0, ComputeRevenue(cycle, activeRegs(1000, 505)))

	// no meeting count: nothing to spread over
	cycle.CycleTotalMeetings = 0
	assert.Equal(t, 0.0, ComputeRevenue(cycle, activeRegs(1000)))
}

func TestComputeInstructorPaymentContractor(t *testing.T) {
	ins := &insmodel.InstructorModel{
		InstructorEmploymentType: insmodel.EmploymentContractor,
		InstructorRateFrontal:    200,
	}
	// 200/h for 90 minutes
	assert.Equal(t, 300.0, ComputeInstructorPayment(ins, cyclemodel.DeliveryFrontal, 90))
}

func TestComputeInstructorPaymentEmployeeMultiplier(t *testing.T) {
	ins := &insmodel.InstructorModel{
		InstructorEmploymentType: insmodel.EmploymentEmployee,
		InstructorRateFrontal:    150,
	}
	// base round(150) = 150, then 150 * 1.3 = 195
	assert.Equal(t, 195.0, ComputeInstructorPayment(ins, cyclemodel.DeliveryFrontal, 60))
}

func TestComputeInstructorPaymentRateFallback(t *testing.T) {
	ins := &insmodel.InstructorModel{
		InstructorEmploymentType: insmodel.EmploymentContractor,
		InstructorRateFrontal:    100,
		InstructorRateOnline:     0, // unset: frontal rate applies
		InstructorRatePrivate:    120,
	}
	assert.Equal(t, 100.0, ComputeInstructorPayment(ins, cyclemodel.DeliveryOnline, 60))
	assert.Equal(t, 120.0, ComputeInstructorPayment(ins, cyclemodel.DeliveryPrivate, 60))
}

func TestComputeInstructorPaymentNilInstructor(t *testing.T) {
	assert.Equal(t, 0.0, ComputeInstructorPayment(nil, cyclemodel.DeliveryFrontal, 60))
}

func TestComputeFinancials(t *testing.T) {
	cycle := &cyclemodel.CycleModel{
		CyclePricingMode:     cyclemodel.PricingInstitutionalFixed,
		CycleMeetingRevenue:  fptr(500),
		CycleDurationMinutes: 90,
	}
	ins := &insmodel.InstructorModel{
		InstructorEmploymentType: insmodel.EmploymentContractor,
		InstructorRateFrontal:    200,
	}

	fin := ComputeFinancials(cycle, ins, cyclemodel.DeliveryFrontal, nil)
	assert.Equal(t, 500.0, fin.Revenue)
	assert.Equal(t, 300.0, fin.InstructorPayment)
	assert.Equal(t, 200.0, fin.Profit)
}

func TestComputeFinancialsNegativeProfit(t *testing.T) {
	cycle := &cyclemodel.CycleModel{
		CyclePricingMode:     cyclemodel.PricingInstitutionalFixed,
		CycleMeetingRevenue:  fptr(100),
		CycleDurationMinutes: 60,
	}
	ins := &insmodel.InstructorModel{
		InstructorEmploymentType: insmodel.EmploymentContractor,
		InstructorRateFrontal:    250,
	}

	fin := ComputeFinancials(cycle, ins, cyclemodel.DeliveryFrontal, nil)
	assert.Equal(t, -150.0, fin.Profit)
}

func TestEffectiveStudentCount(t *testing.T) {
	cycle := &cyclemodel.CycleModel{}
	assert.Equal(t, 3, EffectiveStudentCount(cycle, activeRegs(0, 0, 0)))

	cycle.CycleStudentCount = iptr(15)
	assert.Equal(t, 15, EffectiveStudentCount(cycle, activeRegs(0, 0, 0)))
}
