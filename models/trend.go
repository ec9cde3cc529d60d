package models

// ProfitPotential grades a trend idea.
type ProfitPotential string

const (
	PotentialHigh     ProfitPotential = "High"
	PotentialMedium   ProfitPotential = "Medium"
	PotentialEmerging ProfitPotential = "Emerging"
)

// TrendIdea is an ephemeral article suggestion produced by the AI gateway.
// It is never stored; at most it gets promoted into an editor draft.
type TrendIdea struct {
	Topic           string          `json:"topic"`
	Reason          string          `json:"reason"`
	ProfitPotential ProfitPotential `json:"profitPotential"`
	Keywords        []string        `json:"keywords"`
	Region          string          `json:"region,omitempty"`
	EstimatedCPC    string          `json:"estimatedCPC,omitempty"`
}

// TrendRegions and TrendCategories mirror the explorer's filter buttons.
var (
	TrendRegions    = []string{"USA", "Europe", "Asia", "MENA"}
	TrendCategories = []string{"تمويل وتقنية", "تأمين", "عقارات", "ذكاء اصطناعي"}
)
