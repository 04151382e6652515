package main

import (
	"fmt"
	"strings"
)

// Hazard classification is a fixed, auditable rule: an allow-list of
// condition names plus two description substrings. There is deliberately
// no severity scoring and no thresholding on numeric fields like wind
// speed or precipitation rate.

// hazardConditions are matched case-sensitively against the provider's
// classification vocabulary.
var hazardConditions = map[string]struct{}{
	"Thunderstorm": {},
	"Snow":         {},
	"Squall":       {},
	"Tornado":      {},
}

// hazardSubstrings are matched against the lowercased free-text
// description.
var hazardSubstrings = []string{"heavy rain", "extreme"}

// ClassifyHazard reports whether a weather condition warrants driver
// attention. When it does, the second return value is a human-readable
// message; otherwise it is empty.
func ClassifyHazard(condition, description string) (bool, string) {
	hazard := false
	if _, ok := hazardConditions[condition]; ok {
		hazard = true
	}
	if !hazard {
		lower := strings.ToLower(description)
		for _, sub := range hazardSubstrings {
			if strings.Contains(lower, sub) {
				hazard = true
				break
			}
		}
	}
	if !hazard {
		return false, ""
	}

	name := condition
	if name == "" {
		name = description
	}
	return true, fmt.Sprintf("hazard: %s", name)
}
