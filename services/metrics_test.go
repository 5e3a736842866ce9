package services

import (
	"errors"
	"testing"
)

// basicDeal is a Basic-plan deal with 5 portal seats over 24 months and no
// usage products. Portal: 5 seats * 250 = 1250/yr.
func basicDeal() QuoteInputs {
	return QuoteInputs{
		CustomerName:              "Acme Corp",
		CustomerPlan:              "Basic",
		PlatformFee:               3000,
		ImplementationFee:         2499,
		PortalSeats:               5,
		ContractTermMonths:        24,
		DisplayCurrency:           "AUD",
		OriginalPlatformFee:       3000,
		OriginalImplementationFee: 2499,
	}
}

func TestCalculateMetrics_RecurringOnly(t *testing.T) {
	got, err := CalculateMetrics(basicDeal(), testConfig())
	if err != nil {
		t.Fatalf("CalculateMetrics() error = %v", err)
	}

	// MRR = 3000/12 + 1250/12 = 354.1667; implementation fee is one-off.
	if !floatClose(got.MRR, 354.166667) {
		t.Errorf("MRR = %f, want 354.166667", got.MRR)
	}
	if !floatClose(got.ARR, 4250) {
		t.Errorf("ARR = %f, want 4250", got.ARR)
	}
	if !floatClose(got.CommittedARR, 4250) {
		t.Errorf("CommittedARR = %f, want 4250", got.CommittedARR)
	}
	// TCV = 354.1667*24 + 2499 = 10999.
	if !floatClose(got.TCV, 10999) {
		t.Errorf("TCV = %f, want 10999", got.TCV)
	}
	// No usage products, so no cost to serve.
	if !floatClose(got.GrossProfit, 10999) {
		t.Errorf("GrossProfit = %f, want 10999", got.GrossProfit)
	}
	if !floatClose(got.GrossMargin, 100) {
		t.Errorf("GrossMargin = %f, want 100", got.GrossMargin)
	}
	// CAC = implementation fee only.
	if !floatClose(got.LTVCAC, 4.401361) {
		t.Errorf("LTVCAC = %f, want 4.401361", got.LTVCAC)
	}
	if !floatClose(got.PaybackMonths, 5.452859) {
		t.Errorf("PaybackMonths = %f, want 5.452859", got.PaybackMonths)
	}
	if !floatClose(got.PC3, 100) {
		t.Errorf("PC3 = %f, want 100", got.PC3)
	}
	if got.Assessment != AssessmentExcellent {
		t.Errorf("Assessment = %q, want %q", got.Assessment, AssessmentExcellent)
	}
}

func TestCalculateMetrics_WithUsageProducts(t *testing.T) {
	in := QuoteInputs{
		CustomerPlan:              "Basic",
		PlatformFee:               3000,
		ImplementationFee:         2499,
		ContractTermMonths:        12,
		DisplayCurrency:           "AUD",
		OriginalPlatformFee:       3000,
		OriginalImplementationFee: 2499,
		Products: []ProductSelection{
			{Key: "kyc_individual", Volume: 12000}, // 10200/yr = 850/mo
		},
	}

	got, err := CalculateMetrics(in, testConfig())
	if err != nil {
		t.Fatalf("CalculateMetrics() error = %v", err)
	}

	if !floatClose(got.MRR, 1100) {
		t.Errorf("MRR = %f, want 1100", got.MRR)
	}
	if !floatClose(got.ARR, 13200) {
		t.Errorf("ARR = %f, want 13200", got.ARR)
	}
	if !floatClose(got.TCV, 15699) {
		t.Errorf("TCV = %f, want 15699", got.TCV)
	}
	// Cost to serve = 0.30 * 850 * 12 = 3060.
	if !floatClose(got.GrossProfit, 12639) {
		t.Errorf("GrossProfit = %f, want 12639", got.GrossProfit)
	}
	if !floatClose(got.GrossMargin, 80.508313) {
		t.Errorf("GrossMargin = %f, want 80.508313", got.GrossMargin)
	}
	if !floatClose(got.LTVCAC, 5.057623) {
		t.Errorf("LTVCAC = %f, want 5.057623", got.LTVCAC)
	}
	if !floatClose(got.PaybackMonths, 2.372656) {
		t.Errorf("PaybackMonths = %f, want 2.372656", got.PaybackMonths)
	}
	if !floatClose(got.PC3, 94.152494) {
		t.Errorf("PC3 = %f, want 94.152494", got.PC3)
	}
}

func TestCalculateMetrics_PartnerCommissionRaisesCAC(t *testing.T) {
	in := basicDeal()
	in.PartnerCommission = 10

	got, err := CalculateMetrics(in, testConfig())
	if err != nil {
		t.Fatalf("CalculateMetrics() error = %v", err)
	}

	// CAC = 10% of TCV + implementation fee = 1099.9 + 2499 = 3598.9.
	if !floatClose(got.LTVCAC, 3.056212) {
		t.Errorf("LTVCAC = %f, want 3.056212", got.LTVCAC)
	}
	if !floatClose(got.PaybackMonths, 7.852859) {
		t.Errorf("PaybackMonths = %f, want 7.852859", got.PaybackMonths)
	}
}

func TestCalculateMetrics_CommittedARRFloor(t *testing.T) {
	in := basicDeal()
	in.MinimumCommitment = 20000

	got, err := CalculateMetrics(in, testConfig())
	if err != nil {
		t.Fatalf("CalculateMetrics() error = %v", err)
	}

	if !floatClose(got.ARR, 4250) {
		t.Errorf("ARR = %f, want 4250 (minimum commitment must not inflate ARR)", got.ARR)
	}
	if !floatClose(got.CommittedARR, 20000) {
		t.Errorf("CommittedARR = %f, want 20000", got.CommittedARR)
	}
}

func TestCalculateMetrics_VolumeMonotonicity(t *testing.T) {
	makeDeal := func(volume float64) QuoteInputs {
		in := basicDeal()
		in.Products = []ProductSelection{{Key: "kyc_individual", Volume: volume}}
		return in
	}

	var prevMRR float64
	for _, volume := range []float64{0, 1000, 10000, 100000} {
		got, err := CalculateMetrics(makeDeal(volume), testConfig())
		if err != nil {
			t.Fatalf("CalculateMetrics(volume=%v) error = %v", volume, err)
		}
		if got.MRR < prevMRR {
			t.Errorf("MRR decreased as volume grew: %f < %f at volume %v", got.MRR, prevMRR, volume)
		}
		prevMRR = got.MRR
	}
}

func TestCalculateMetrics_CommitmentMonotonicity(t *testing.T) {
	var prev float64
	for _, commitment := range []float64{0, 5000, 20000, 100000} {
		in := basicDeal()
		in.MinimumCommitment = commitment
		got, err := CalculateMetrics(in, testConfig())
		if err != nil {
			t.Fatalf("CalculateMetrics(commitment=%v) error = %v", commitment, err)
		}
		if got.CommittedARR < prev {
			t.Errorf("CommittedARR decreased as commitment grew: %f < %f at %v", got.CommittedARR, prev, commitment)
		}
		prev = got.CommittedARR
	}
}

func TestCalculateMetrics_ZeroDeal(t *testing.T) {
	in := QuoteInputs{CustomerPlan: "Basic", DisplayCurrency: "AUD"}

	got, err := CalculateMetrics(in, testConfig())
	if err != nil {
		t.Fatalf("CalculateMetrics() error = %v", err)
	}

	if got.MRR != 0 || got.TCV != 0 {
		t.Errorf("zero deal: MRR = %f, TCV = %f, want 0", got.MRR, got.TCV)
	}
	if got.GrossMargin != 0 {
		t.Errorf("GrossMargin = %f, want 0 (no division by zero TCV)", got.GrossMargin)
	}
	if got.LTVCAC != 0 {
		t.Errorf("LTVCAC = %f, want 0 (no acquisition cost)", got.LTVCAC)
	}
	if got.PaybackMonths != PaybackUnbounded {
		t.Errorf("PaybackMonths = %f, want unbounded sentinel %d", got.PaybackMonths, PaybackUnbounded)
	}
	if got.Assessment != AssessmentPoor {
		t.Errorf("Assessment = %q, want %q", got.Assessment, AssessmentPoor)
	}
}

func TestCalculateMetrics_NegativeInputsClampToZero(t *testing.T) {
	in := basicDeal()
	in.PlatformFee = -3000
	in.ImplementationFee = -2499
	in.MinimumCommitment = -1
	in.ChildAccounts = -2
	in.PortalSeats = -5
	in.SupportLevel = -15000
	in.PartnerCommission = -10
	in.OriginalPlatformFee = -3000
	in.OriginalImplementationFee = -2499

	got, err := CalculateMetrics(in, testConfig())
	if err != nil {
		t.Fatalf("CalculateMetrics() error = %v", err)
	}
	if got.MRR != 0 || got.TCV != 0 {
		t.Errorf("clamped deal: MRR = %f, TCV = %f, want 0", got.MRR, got.TCV)
	}
}

func TestCalculateMetrics_DisplayCurrencyScales(t *testing.T) {
	aud, err := CalculateMetrics(basicDeal(), testConfig())
	if err != nil {
		t.Fatalf("CalculateMetrics() AUD error = %v", err)
	}

	in := basicDeal()
	in.DisplayCurrency = "USD"
	usd, err := CalculateMetrics(in, testConfig())
	if err != nil {
		t.Fatalf("CalculateMetrics() USD error = %v", err)
	}

	// Monetary values scale by the exchange rate; ratios are invariant.
	if !floatClose(usd.TCV*1.52, aud.TCV) {
		t.Errorf("TCV: USD %f * 1.52 != AUD %f", usd.TCV, aud.TCV)
	}
	if !floatClose(usd.MRR*1.52, aud.MRR) {
		t.Errorf("MRR: USD %f * 1.52 != AUD %f", usd.MRR, aud.MRR)
	}
	if !floatClose(usd.GrossMargin, aud.GrossMargin) {
		t.Errorf("GrossMargin changed with currency: USD %f, AUD %f", usd.GrossMargin, aud.GrossMargin)
	}
	if !floatClose(usd.LTVCAC, aud.LTVCAC) {
		t.Errorf("LTVCAC changed with currency: USD %f, AUD %f", usd.LTVCAC, aud.LTVCAC)
	}
	if !floatClose(usd.PaybackMonths, aud.PaybackMonths) {
		t.Errorf("PaybackMonths changed with currency: USD %f, AUD %f", usd.PaybackMonths, aud.PaybackMonths)
	}
}

func TestCalculateMetrics_UnknownProduct(t *testing.T) {
	in := basicDeal()
	in.Products = []ProductSelection{{Key: "retired_product", Volume: 100}}

	_, err := CalculateMetrics(in, testConfig())
	if !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("error = %v, want ErrUnknownProduct", err)
	}
}

func TestCalculateMetrics_UnknownPlan(t *testing.T) {
	in := basicDeal()
	in.CustomerPlan = "Platinum"

	_, err := CalculateMetrics(in, testConfig())
	if !errors.Is(err, ErrUnknownPlan) {
		t.Errorf("error = %v, want ErrUnknownPlan", err)
	}
}

func TestCalculateMetrics_UnknownDisplayCurrency(t *testing.T) {
	in := basicDeal()
	in.DisplayCurrency = "JPY"

	_, err := CalculateMetrics(in, testConfig())
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("error = %v, want ErrUnknownCurrency", err)
	}
}

func TestAssess_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		pc3  float64
		want string
	}{
		{"excellent_at_80", 80, AssessmentExcellent},
		{"good_just_below_80", 79.99, AssessmentGood},
		{"good_at_60", 60, AssessmentGood},
		{"fair_just_below_60", 59.99, AssessmentFair},
		{"fair_at_40", 40, AssessmentFair},
		{"poor_just_below_40", 39.99, AssessmentPoor},
		{"poor_at_zero", 0, AssessmentPoor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assess(tt.pc3); got != tt.want {
				t.Errorf("assess(%v) = %q, want %q", tt.pc3, got, tt.want)
			}
		})
	}
}

func TestCalcPC3_BetterInputsNeverLowerScore(t *testing.T) {
	base := calcPC3(60, 2, 18)
	betterMargin := calcPC3(80, 2, 18)
	betterLTV := calcPC3(60, 3, 18)
	betterPayback := calcPC3(60, 2, 9)

	if betterMargin < base {
		t.Errorf("higher margin lowered PC3: %f < %f", betterMargin, base)
	}
	if betterLTV < base {
		t.Errorf("higher LTV:CAC lowered PC3: %f < %f", betterLTV, base)
	}
	if betterPayback < base {
		t.Errorf("faster payback lowered PC3: %f < %f", betterPayback, base)
	}
}
