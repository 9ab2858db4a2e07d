package simcard

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	cardNumberPrefix = "898600"
	dateLayout       = "2006-01-02"
)

// Config holds the SIM generation constants.
type Config struct {
	Count       int
	QuotaMinMB  int
	QuotaMaxMB  int
	UsedFloorMB int
	// UsedCeiling caps the used quota as a fraction of the total.
	UsedCeiling float64

	ExpiryMinDays int
	ExpiryMaxDays int

	Operators   []string
	MonthlyFees []int

	// Statuses is a weighted pool; repeated entries raise a status's odds.
	Statuses []Status

	// BindingPool is the id range synthetic device bindings are drawn from.
	BindingPoolMin int
	BindingPoolMax int
}

// DefaultConfig returns the observed plan constants: 25 cards on a
// 500–2000 MB band, a 3:1:1 normal/expiring/delinquent bias and a 50% chance
// of a device binding.
func DefaultConfig() Config {
	return Config{
		Count:          25,
		QuotaMinMB:     500,
		QuotaMaxMB:     2000,
		UsedFloorMB:    50,
		UsedCeiling:    0.9,
		ExpiryMinDays:  30,
		ExpiryMaxDays:  365,
		Operators:      []string{"China Mobile", "China Unicom", "China Telecom"},
		MonthlyFees:    []int{15, 20, 30, 50},
		Statuses:       []Status{StatusNormal, StatusNormal, StatusNormal, StatusExpiringSoon, StatusDelinquent},
		BindingPoolMin: 1001,
		BindingPoolMax: 1050,
	}
}

// Generate produces cfg.Count data-plan records.
func Generate(cfg Config, rng *rand.Rand, now time.Time) ([]SimCard, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("simcard: non-positive count %d", cfg.Count)
	}
	if cfg.QuotaMinMB <= 0 || cfg.QuotaMaxMB < cfg.QuotaMinMB {
		return nil, fmt.Errorf("simcard: invalid quota band [%d, %d]", cfg.QuotaMinMB, cfg.QuotaMaxMB)
	}

	cards := make([]SimCard, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		total := cfg.QuotaMinMB + rng.Intn(cfg.QuotaMaxMB-cfg.QuotaMinMB+1)
		ceiling := int(float64(total) * cfg.UsedCeiling)
		used := cfg.UsedFloorMB
		if ceiling > cfg.UsedFloorMB {
			used = cfg.UsedFloorMB + rng.Intn(ceiling-cfg.UsedFloorMB+1)
		}

		card := SimCard{
			CardNumber:   fmt.Sprintf("%s%09d", cardNumberPrefix, 100000000+rng.Intn(900000000)),
			Operator:     cfg.Operators[rng.Intn(len(cfg.Operators))],
			TotalMB:      total,
			UsedMB:       used,
			RemainingMB:  total - used,
			UsagePercent: usagePercent(used, total),
			ExpireDate:   now.AddDate(0, 0, cfg.ExpiryMinDays+rng.Intn(cfg.ExpiryMaxDays-cfg.ExpiryMinDays+1)).Format(dateLayout),
			Status:       cfg.Statuses[rng.Intn(len(cfg.Statuses))],
			MonthlyFee:   cfg.MonthlyFees[rng.Intn(len(cfg.MonthlyFees))],
		}
		if rng.Intn(2) == 1 {
			binding := fmt.Sprintf("device-%04d", cfg.BindingPoolMin+rng.Intn(cfg.BindingPoolMax-cfg.BindingPoolMin+1))
			card.DeviceBinding = &binding
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func usagePercent(used, total int) float64 {
	return math.Round(float64(used)/float64(total)*1000) / 10
}
