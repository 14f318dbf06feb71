package model

type InputReport struct {
	Region            Region `json:"region" xml:"region"`
	PeriodType        string `json:"periodType" xml:"periodType"`
	TimeToElapse      int    `json:"timeToElapse" xml:"timeToElapse"`
	ReportedCases     int    `json:"reportedCases" xml:"reportedCases"`
	Population        int    `json:"population" xml:"population"`
	TotalHospitalBeds int    `json:"totalHospitalBeds" xml:"totalHospitalBeds"`
}

type Region struct {
	Name                     string  `json:"name" xml:"name"`
	AvgAge                   float64 `json:"avgAge" xml:"avgAge"`
	AvgDailyIncomeInUSD      float64 `json:"avgDailyIncomeInUSD" xml:"avgDailyIncomeInUSD"`
	AvgDailyIncomePopulation float64 `json:"avgDailyIncomePopulation" xml:"avgDailyIncomePopulation"`
}

const (
	PeriodDays   = "days"
	PeriodWeeks  = "weeks"
	PeriodMonths = "months"
)
