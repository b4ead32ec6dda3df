package service

const (
	DaysPerYear = 365

	MaxPrincipal  = 1_000_000_000.0 // 1 billion
	MaxAnnualRate = 1.0             // rates are decimals, 100% annual max
	MaxTermMonths = 600             // 50 years
)
