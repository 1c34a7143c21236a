package domain

import "fmt"

// Department identifies one research desk. Each department owns an isolated
// logical store; the set is closed.
type Department string

// The five departments, declared in seeding order.
const (
	DepartmentTrendAnalyst            Department = "Trend_Analyst"
	DepartmentMeanReversionSpecialist Department = "Mean-Reversion_Specialist"
	DepartmentVolatilityScout         Department = "Volatility_Scout"
	DepartmentFundamentalReader       Department = "Fundamental_Reader"
	DepartmentNewsSentimentReader     Department = "News-Sentiment_Reader"
)

// Departments returns every department in the fixed seeding order.
func Departments() []Department {
	return []Department{
		DepartmentTrendAnalyst,
		DepartmentMeanReversionSpecialist,
		DepartmentVolatilityScout,
		DepartmentFundamentalReader,
		DepartmentNewsSentimentReader,
	}
}

// ParseDepartment converts a department name into a Department.
func ParseDepartment(name string) (Department, error) {
	d := Department(name)
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDepartment, name)
	}
	return d, nil
}

// IsValid returns true if the department is one of the known departments.
func (d Department) IsValid() bool {
	switch d {
	case DepartmentTrendAnalyst, DepartmentMeanReversionSpecialist, DepartmentVolatilityScout,
		DepartmentFundamentalReader, DepartmentNewsSentimentReader:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d Department) String() string {
	return string(d)
}

// Description returns a human-readable description of the department.
func (d Department) Description() string {
	switch d {
	case DepartmentTrendAnalyst:
		return "Trend following on moving-average structure"
	case DepartmentMeanReversionSpecialist:
		return "Overbought/oversold reversals"
	case DepartmentVolatilityScout:
		return "Volatility expansion and contraction regimes"
	case DepartmentFundamentalReader:
		return "On-chain and macro fundamentals"
	case DepartmentNewsSentimentReader:
		return "News and community sentiment"
	default:
		return unknownDescription
	}
}
