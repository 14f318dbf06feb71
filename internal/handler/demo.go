package handler

import "covid-estimator/internal/model"

// DemoReport is the fixed report behind the demo endpoint.
func DemoReport() model.InputReport {
	return model.InputReport{
		Region: model.Region{
			Name:                     "Africa",
			AvgAge:                   19.7,
			AvgDailyIncomeInUSD:      3,
			AvgDailyIncomePopulation: 0.56,
		},
		PeriodType:        model.PeriodMonths,
		TimeToElapse:      3,
		ReportedCases:     1718,
		Population:        6759997,
		TotalHospitalBeds: 94314,
	}
}
