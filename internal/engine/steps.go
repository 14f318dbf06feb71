package engine

import (
	"math"

	"covid-estimator/internal/model"
)

const (
	DaysPerWeek  = 7
	DaysPerMonth = 30

	// Infections double every DoublingPeriodDays.
	DoublingPeriodDays = 3

	SevereRate          = 0.15
	BedAvailabilityRate = 0.35
	ICURate             = 0.05
	VentilatorRate      = 0.02
)

// MaxTimeToElapse keeps the normalized duration inside int for every period
// type.
const MaxTimeToElapse = math.MaxInt32 / DaysPerMonth

// NormaliseDuration converts timeToElapse to days. Unknown period types are
// taken as days.
func NormaliseDuration(timeToElapse int, periodType string) int {
	switch periodType {
	case model.PeriodWeeks:
		return timeToElapse * DaysPerWeek
	case model.PeriodMonths:
		return timeToElapse * DaysPerMonth
	}
	return timeToElapse
}

func KnownPeriodType(periodType string) bool {
	switch periodType {
	case model.PeriodDays, model.PeriodWeeks, model.PeriodMonths:
		return true
	}
	return false
}

func CurrentlyInfected(reportedCases, multiplier int) model.Count {
	return model.Count(float64(reportedCases) * float64(multiplier))
}

// InfectionsByRequestedTime doubles currentlyInfected once per full
// doubling period in days. Scaling by a power of two is exact, so the result
// only fails once it leaves the float64 range.
func InfectionsByRequestedTime(currentlyInfected model.Count, days int) (model.Count, error) {
	factor := days / DoublingPeriodDays

	v := math.Trunc(math.Ldexp(float64(currentlyInfected), factor))
	if math.IsInf(v, 0) {
		return 0, ErrProjectionOverflow
	}

	return model.Count(v), nil
}

func SevereCasesByRequestedTime(infections model.Count) model.Count {
	return model.Count(math.Trunc(float64(infections) * SevereRate))
}

// HospitalBedsByRequestedTime reports the available beds when they cover the
// severe cases, otherwise the (negative) shortfall.
func HospitalBedsByRequestedTime(totalBeds int, severeCases model.Count) model.Count {
	// The conversion rounds the product so it is not fused into the subtraction.
	available := float64(float64(totalBeds) * BedAvailabilityRate)
	remainder := available - float64(severeCases)
	if remainder >= 0 {
		return model.Count(math.Trunc(available))
	}
	return model.Count(math.Trunc(remainder))
}

func CasesForICUByRequestedTime(infections model.Count) model.Count {
	return model.Count(math.Trunc(float64(infections) * ICURate))
}

func CasesForVentilatorsByRequestedTime(infections model.Count) model.Count {
	return model.Count(math.Trunc(float64(infections) * VentilatorRate))
}

// DollarsInFlight is the daily income lost by the infected earning
// population, spread across the duration.
func DollarsInFlight(infections model.Count, region model.Region, days int) (model.Count, error) {
	if days == 0 {
		return 0, ErrDivisionByZero
	}

	v := math.Trunc(float64(infections) * region.AvgDailyIncomePopulation * region.AvgDailyIncomeInUSD / float64(days))
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrProjectionOverflow
	}

	return model.Count(v), nil
}
