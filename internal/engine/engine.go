package engine

import (
	"fmt"

	"covid-estimator/internal/model"
)

const (
	ImpactMultiplier       = 10
	SevereImpactMultiplier = 50
)

// Estimate runs the projection chain for both scenarios. The normalized
// duration is computed once and shared; the scenarios differ only in the
// multiplier applied to the reported cases.
func Estimate(report *model.InputReport) (*model.OutputReport, error) {
	if report.TimeToElapse > MaxTimeToElapse {
		return nil, ErrInvalidDuration
	}

	days := NormaliseDuration(report.TimeToElapse, report.PeriodType)
	switch {
	case days == 0:
		return nil, ErrDivisionByZero
	case days < 0:
		return nil, ErrInvalidDuration
	}

	impact, err := project(report, days, ImpactMultiplier)
	if err != nil {
		return nil, fmt.Errorf("impact: %w", err)
	}

	severeImpact, err := project(report, days, SevereImpactMultiplier)
	if err != nil {
		return nil, fmt.Errorf("severe impact: %w", err)
	}

	return &model.OutputReport{
		Data:         *report,
		Impact:       impact,
		SevereImpact: severeImpact,
	}, nil
}

func project(report *model.InputReport, days int, multiplier int) (model.Projection, error) {
	var p model.Projection

	p.CurrentlyInfected = CurrentlyInfected(report.ReportedCases, multiplier)

	infections, err := InfectionsByRequestedTime(p.CurrentlyInfected, days)
	if err != nil {
		return p, err
	}
	p.InfectionsByRequestedTime = infections

	p.SevereCasesByRequestedTime = SevereCasesByRequestedTime(infections)
	p.HospitalBedsByRequestedTime = HospitalBedsByRequestedTime(report.TotalHospitalBeds, p.SevereCasesByRequestedTime)
	p.CasesForICUByRequestedTime = CasesForICUByRequestedTime(infections)
	p.CasesForVentilatorsByRequestedTime = CasesForVentilatorsByRequestedTime(infections)

	dollars, err := DollarsInFlight(infections, report.Region, days)
	if err != nil {
		return p, err
	}
	p.DollarsInFlight = dollars

	return p, nil
}
