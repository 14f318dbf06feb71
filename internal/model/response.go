package model

import (
	"encoding/xml"
	"strconv"
)

type OutputReport struct {
	XMLName      xml.Name    `json:"-" xml:"estimate"`
	Data         InputReport `json:"data" xml:"data"`
	Impact       Projection  `json:"impact" xml:"impact"`
	SevereImpact Projection  `json:"severeImpact" xml:"severeImpact"`
}

// Count is a truncated, integer-valued projection figure. Projections grow
// far past the int64 range, so they are carried as float64 and always
// rendered as plain integer digits.
type Count float64

func (c Count) String() string {
	if c == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(c), 'f', 0, 64)
}

func (c Count) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c Count) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Projection is one scenario of the estimate. HospitalBedsByRequestedTime
// is negative when the available beds fall short of the severe cases.
type Projection struct {
	CurrentlyInfected                  Count `json:"currentlyInfected" xml:"currentlyInfected"`
	InfectionsByRequestedTime          Count `json:"infectionsByRequestedTime" xml:"infectionsByRequestedTime"`
	SevereCasesByRequestedTime         Count `json:"severeCasesByRequestedTime" xml:"severeCasesByRequestedTime"`
	HospitalBedsByRequestedTime        Count `json:"hospitalBedsByRequestedTime" xml:"hospitalBedsByRequestedTime"`
	CasesForICUByRequestedTime         Count `json:"casesForICUByRequestedTime" xml:"casesForICUByRequestedTime"`
	CasesForVentilatorsByRequestedTime Count `json:"casesForVentilatorsByRequestedTime" xml:"casesForVentilatorsByRequestedTime"`
	DollarsInFlight                    Count `json:"dollarsInFlight" xml:"dollarsInFlight"`
}

type ErrorResponse struct {
	XMLName xml.Name `json:"-" xml:"error"`
	Status  int      `json:"status" xml:"status"`
	Message string   `json:"message" xml:"message"`
	Field   string   `json:"field,omitempty" xml:"field,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

const StatusOK = "ok"
