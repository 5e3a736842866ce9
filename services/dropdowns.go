package services

// PlanOptions returns the list of customer plan tiers.
var PlanOptions = []string{
	"Basic",
	"Pro",
	"Enterprise",
}

// PaymentFrequencyOptions returns the list of payment frequency options.
var PaymentFrequencyOptions = []string{
	"Monthly",
	"Quarterly",
	"Annual",
}

// AutoRenewOptions returns the auto-renew options.
var AutoRenewOptions = []string{"Yes", "No"}

// ContractTermOptions returns the selectable contract terms in months.
var ContractTermOptions = []int{12, 24, 36, 48, 60}

// SupportLevelOptions returns the selectable annual support add-on amounts.
// 0 is the included Basic tier.
var SupportLevelOptions = []float64{0, 15000, 30000}
