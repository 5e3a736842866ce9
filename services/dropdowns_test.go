package services

import "testing"

func TestDropdownOptions(t *testing.T) {
	if len(PlanOptions) != 3 {
		t.Errorf("PlanOptions = %v, want 3 plans", PlanOptions)
	}
	if PlanOptions[0] != "Basic" {
		t.Errorf("first plan = %q, want Basic", PlanOptions[0])
	}
	if len(PaymentFrequencyOptions) != 3 {
		t.Errorf("PaymentFrequencyOptions = %v, want 3 options", PaymentFrequencyOptions)
	}
	if len(AutoRenewOptions) != 2 {
		t.Errorf("AutoRenewOptions = %v, want Yes/No", AutoRenewOptions)
	}
	if ContractTermOptions[0] != 12 {
		t.Errorf("shortest contract term = %d, want 12", ContractTermOptions[0])
	}
	if SupportLevelOptions[0] != 0 {
		t.Errorf("first support level = %v, want 0 (included Basic tier)", SupportLevelOptions[0])
	}
}
