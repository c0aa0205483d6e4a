package prompt

import (
	"strings"
	"testing"
)

func TestBuildBriefPrompt(t *testing.T) {
	tests := []struct {
		name        string
		idea        string
		features    string
		audience    string
		wantSubstrs []string
	}{
		{
			name:     "all fields filled",
			idea:     "a recipe sharing app",
			features: "meal planner, shopping list",
			audience: "home cooks",
			wantSubstrs: []string{
				"App Idea: a recipe sharing app",
				"Key Features to Include: meal planner, shopping list",
				"Target Audience: home cooks",
			},
		},
		{
			name:     "empty features gets placeholder",
			idea:     "a recipe sharing app",
			features: "",
			audience: "home cooks",
			wantSubstrs: []string{
				"Key Features to Include: " + PlaceholderFeatures,
				"Target Audience: home cooks",
			},
		},
		{
			name:     "empty audience gets placeholder",
			idea:     "a recipe sharing app",
			features: "meal planner",
			audience: "   ",
			wantSubstrs: []string{
				"Key Features to Include: meal planner",
				"Target Audience: " + PlaceholderAudience,
			},
		},
		{
			name:     "both optional fields empty, placeholders independent",
			idea:     "a recipe sharing app",
			features: "  ",
			audience: "",
			wantSubstrs: []string{
				"Key Features to Include: " + PlaceholderFeatures,
				"Target Audience: " + PlaceholderAudience,
			},
		},
		{
			name:     "idea is trimmed",
			idea:     "  фитнес-трекер  ",
			features: "x",
			audience: "y",
			wantSubstrs: []string{
				"App Idea: фитнес-трекер\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildBriefPrompt(tt.idea, tt.features, tt.audience)
			for _, want := range tt.wantSubstrs {
				if !strings.Contains(got, want) {
					t.Errorf("BuildBriefPrompt() missing substring %q\nGot:\n%s", want, got)
				}
			}
		})
	}
}

// TestSystemInstructionSections verifies that the fixed system template
// describes every required brief section.
func TestSystemInstructionSections(t *testing.T) {
	sections := []string{
		"App Overview",
		"User Stories & Key Features",
		"UI/UX Considerations",
		"Recommended Technical Stack",
		"Monetization Strategy",
	}

	for _, s := range sections {
		if !strings.Contains(SystemInstruction, s) {
			t.Errorf("SystemInstruction is missing section %q", s)
		}
	}
}
