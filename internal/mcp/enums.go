package mcp

import "fmt"

// Enum name sets mirror the Google Ads API enums the tools accept. Values
// are validated before any API call so a typo fails fast.
var (
	campaignStatuses = enumSet("ENABLED", "PAUSED", "REMOVED")

	advertisingChannelTypes = enumSet(
		"SEARCH", "DISPLAY", "SHOPPING", "HOTEL", "VIDEO", "MULTI_CHANNEL",
		"LOCAL", "SMART", "PERFORMANCE_MAX", "LOCAL_SERVICES", "TRAVEL",
		"DEMAND_GEN",
	)

	adGroupStatuses = enumSet("ENABLED", "PAUSED", "REMOVED")

	adGroupAdStatuses = enumSet("ENABLED", "PAUSED", "REMOVED")

	adGroupCriterionStatuses = enumSet("ENABLED", "PAUSED", "REMOVED")

	keywordMatchTypes = enumSet("EXACT", "PHRASE", "BROAD")
)

func enumSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// validateEnum checks a value against an enum name set and reports the
// offending field on failure.
func validateEnum(set map[string]struct{}, value, fieldName string) error {
	if _, ok := set[value]; !ok {
		return fmt.Errorf("Invalid %s: %s", fieldName, value)
	}
	return nil
}
