// internals/features/lessons/meetings/service/finance.go
package service

import (
	"math"

	insmodel "educrm_backend/internals/features/crm/instructors/model"
	cyclemodel "educrm_backend/internals/features/lessons/cycles/model"
	regmodel "educrm_backend/internals/features/lessons/registrations/model"
)

// Financials is the computed money triple for one meeting.
type Financials struct {
	Revenue           float64 `json:"revenue"`
	InstructorPayment float64 `json:"instructor_payment"`
	Profit            float64 `json:"profit"`
}

// RoundCurrency rounds half-up to the nearest whole currency unit.
// Amounts in this system carry no fractional units.
func RoundCurrency(v float64) float64 {
	return math.Floor(v + 0.5)
}

// employeeMultiplier: employees are paid +30% over the raw hourly figure.
const employeeMultiplier = 1.3

// ComputeRevenue derives one meeting's revenue from the cycle's pricing mode.
// activeRegs must already be filtered to status=active.
func ComputeRevenue(cycle *cyclemodel.CycleModel, activeRegs []regmodel.RegistrationModel) float64 {
	switch cycle.CyclePricingMode {
	case cyclemodel.PricingPrivate:
		if cycle.CycleTotalMeetings <= 0 {
			return 0
		}
		var sum float64
		for _, r := range activeRegs {
			sum += r.RegistrationAmount
		}
		return RoundCurrency(sum / float64(cycle.CycleTotalMeetings))

	case cyclemodel.PricingInstitutionalChild:
		price := 0.0
		if cycle.CyclePricePerStudent != nil {
			price = *cycle.CyclePricePerStudent
		}
		return RoundCurrency(price * float64(EffectiveStudentCount(cycle, activeRegs)))

	case cyclemodel.PricingInstitutionalFixed:
		if cycle.CycleMeetingRevenue == nil {
			return 0
		}
		return RoundCurrency(*cycle.CycleMeetingRevenue)
	}
	return 0
}

// EffectiveStudentCount is the cycle's declared student count when set,
// otherwise the live count of active registrations.
func EffectiveStudentCount(cycle *cyclemodel.CycleModel, activeRegs []regmodel.RegistrationModel) int {
	if cycle.CycleStudentCount != nil {
		return *cycle.CycleStudentCount
	}
	return len(activeRegs)
}

// ComputeInstructorPayment selects the hourly rate by the meeting's activity
// type (not the cycle's nominal mode), scales by duration and applies the
// employee multiplier.
func ComputeInstructorPayment(ins *insmodel.InstructorModel, activityType string, durationMinutes int) float64 {
	if ins == nil {
		return 0
	}

	rate := ins.InstructorRateFrontal
	switch activityType {
	case cyclemodel.DeliveryOnline:
		if ins.InstructorRateOnline > 0 {
			rate = ins.InstructorRateOnline
		}
	case cyclemodel.DeliveryPrivate:
		if ins.InstructorRatePrivate > 0 {
			rate = ins.InstructorRatePrivate
		}
	}
	if rate < 0 {
		rate = 0
	}

	base := RoundCurrency(rate * (float64(durationMinutes) / 60.0))
	if ins.InstructorEmploymentType == insmodel.EmploymentEmployee {
		return RoundCurrency(base * employeeMultiplier)
	}
	return base
}

// ComputeFinancials runs both formulas for one meeting. This is the single
// implementation shared by completion, recalculation, replacement synthesis
// and cycle duplication; the formulas must not drift between call sites.
func ComputeFinancials(
	cycle *cyclemodel.CycleModel,
	ins *insmodel.InstructorModel,
	activityType string,
	activeRegs []regmodel.RegistrationModel,
) Financials {
	revenue := ComputeRevenue(cycle, activeRegs)
	payment := ComputeInstructorPayment(ins, activityType, cycle.CycleDurationMinutes)
	return Financials{
		Revenue:           revenue,
		InstructorPayment: payment,
		// deliberately not clamped; negative profit is real information
		Profit: revenue - payment,
	}
}
