package model

// RealizedGainDetail is the per-transaction breakdown produced by the
// capital gains calculation.
type RealizedGainDetail struct {
	Transaction
	Gain   float64 `json:"gain"`
	IsGain bool    `json:"isGain"`
}

// RealizedGains summarizes capital gains tax over sell transactions.
// TotalGain and TotalLoss accumulate separately (losses as absolute values);
// TaxAmount applies only when the net is positive, otherwise the net loss
// becomes LossCarryover.
type RealizedGains struct {
	TotalGain     float64              `json:"totalGain"`
	TotalLoss     float64              `json:"totalLoss"`
	NetGain       float64              `json:"netGain"`
	TaxRate       float64              `json:"taxRate"`
	TaxAmount     float64              `json:"taxAmount"`
	LossCarryover float64              `json:"lossCarryover"`
	Details       []RealizedGainDetail `json:"details"`
}

// UnrealizedGainDetail is the per-holding breakdown of paper gains.
type UnrealizedGainDetail struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Gain         float64 `json:"gain"`
	GainPercent  float64 `json:"gainPercent"`
	PotentialTax float64 `json:"potentialTax"`
}

// UnrealizedGains summarizes paper gains on current holdings.
// PotentialTax is computed on the gross gain total, not net of losses:
// it answers "what would be owed if only the winners were sold".
type UnrealizedGains struct {
	TotalUnrealizedGain float64                `json:"totalUnrealizedGain"`
	TotalUnrealizedLoss float64                `json:"totalUnrealizedLoss"`
	NetUnrealized       float64                `json:"netUnrealized"`
	PotentialTax        float64                `json:"potentialTax"`
	Details             []UnrealizedGainDetail `json:"details"`
}

// TaxSummary is the combined annual tax estimate. Realized figures cover the
// given year's transactions only; unrealized figures always reflect current
// holdings regardless of year.
type TaxSummary struct {
	Year              int             `json:"year"`
	Realized          RealizedGains   `json:"realized"`
	Unrealized        UnrealizedGains `json:"unrealized"`
	TotalTaxLiability float64         `json:"totalTaxLiability"`
	EffectiveTaxRate  float64         `json:"effectiveTaxRate"` // percent
}
