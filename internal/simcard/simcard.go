package simcard

// Status is the billing state of a data plan.
type Status string

const (
	StatusNormal       Status = "normal"
	StatusExpiringSoon Status = "expiring-soon"
	StatusDelinquent   Status = "delinquent"
)

// SimCard is one cellular data-plan record. RemainingMB and UsagePercent are
// always derived from TotalMB and UsedMB at generation time; they are never
// stored independently, so they cannot drift.
type SimCard struct {
	CardNumber    string  `json:"card_number"`
	Operator      string  `json:"operator"`
	TotalMB       int     `json:"total_data"`
	UsedMB        int     `json:"used_data"`
	RemainingMB   int     `json:"remaining_data"`
	UsagePercent  float64 `json:"usage_percent"`
	ExpireDate    string  `json:"expire_date"`
	Status        Status  `json:"status"`
	MonthlyFee    int     `json:"monthly_fee"`
	DeviceBinding *string `json:"device_binding"`
}

// Clone returns an independent copy of the card.
func (c SimCard) Clone() SimCard {
	out := c
	if c.DeviceBinding != nil {
		binding := *c.DeviceBinding
		out.DeviceBinding = &binding
	}
	return out
}
