package main

import "testing"

func TestClassifyHazard(t *testing.T) {
	tests := []struct {
		name        string
		condition   string
		description string
		wantHazard  bool
		wantMessage string
	}{
		{
			name:        "thunderstorm condition",
			condition:   "Thunderstorm",
			description: "thunderstorm with light rain",
			wantHazard:  true,
			wantMessage: "hazard: Thunderstorm",
		},
		{
			name:        "snow condition",
			condition:   "Snow",
			description: "light snow",
			wantHazard:  true,
			wantMessage: "hazard: Snow",
		},
		{
			name:        "squall condition",
			condition:   "Squall",
			description: "",
			wantHazard:  true,
			wantMessage: "hazard: Squall",
		},
		{
			name:        "tornado condition",
			condition:   "Tornado",
			description: "",
			wantHazard:  true,
			wantMessage: "hazard: Tornado",
		},
		{
			name:        "heavy rain in description",
			condition:   "Rain",
			description: "heavy rain expected",
			wantHazard:  true,
			wantMessage: "hazard: Rain",
		},
		{
			name:        "extreme in description is case-insensitive",
			condition:   "",
			description: "Extreme cold warning",
			wantHazard:  true,
			wantMessage: "hazard: Extreme cold warning",
		},
		{
			name:        "clear sky",
			condition:   "Clear",
			description: "clear sky",
			wantHazard:  false,
			wantMessage: "",
		},
		{
			name:        "light rain is not a hazard",
			condition:   "Rain",
			description: "light rain",
			wantHazard:  false,
			wantMessage: "",
		},
		{
			name:        "condition match is case-sensitive",
			condition:   "snow",
			description: "",
			wantHazard:  false,
			wantMessage: "",
		},
		{
			name:        "empty inputs",
			condition:   "",
			description: "",
			wantHazard:  false,
			wantMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHazard, gotMessage := ClassifyHazard(tt.condition, tt.description)
			if gotHazard != tt.wantHazard {
				t.Errorf("ClassifyHazard(%q, %q) hazard = %v, want %v", tt.condition, tt.description, gotHazard, tt.wantHazard)
			}
			if gotMessage != tt.wantMessage {
				t.Errorf("ClassifyHazard(%q, %q) message = %q, want %q", tt.condition, tt.description, gotMessage, tt.wantMessage)
			}
		})
	}
}
