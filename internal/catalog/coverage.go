package catalog

import (
	"fmt"
	"strings"
)

// CoverageGuidance estimates insurance coverage for a provider/plan pair.
// The tiers are keyed off plan-name keywords; unknown plans get the middle
// estimate.
func CoverageGuidance(provider, plan string) string {
	if provider == "" {
		return "Select provider and plan to get estimated coverage guidance."
	}
	if plan == "" {
		return fmt.Sprintf("Provider selected (%s). Choose a plan for detailed estimate.", provider)
	}
	if containsFold(plan, "basic") || containsFold(plan, "silver") {
		return "Estimated coverage: 60-75% for outpatient consultations after deductible."
	}
	if containsFold(plan, "premium") || containsFold(plan, "gold") {
		return "Estimated coverage: 80-90% for specialist consultations with low copay."
	}
	return "Estimated coverage: 70-85% depending on referral and in-network eligibility."
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
