package promptgen

// Settings enumerates every recognized generation option. The zero value is a
// usable default: neutral tone, no regional targeting, no business context.
type Settings struct {
	BusinessContext   string   `json:"businessContext" yaml:"business_context"`
	TargetAudience    string   `json:"targetAudience" yaml:"target_audience"`
	BrandVoice        string   `json:"brandVoice" yaml:"brand_voice"`
	OptimizationFocus string   `json:"optimizationFocus" yaml:"optimization_focus"`
	SelectedRegions   []string `json:"selectedRegions" yaml:"selected_regions"`
	PremiumTone       bool     `json:"premiumTone" yaml:"premium_tone"`
	IncludeRegions    bool     `json:"includeRegions" yaml:"include_regions"`
}

// Tone resolves the tone directive used in the prompt footer.
func (s Settings) Tone() string {
	if s.BrandVoice != "" {
		return s.BrandVoice
	}
	if s.PremiumTone {
		return "gehoben und exklusiv"
	}
	return "professionell und vertrauenswürdig"
}

// Regions returns the selected regions, honoring the include flag.
func (s Settings) Regions() []string {
	if !s.IncludeRegions {
		return nil
	}
	return s.SelectedRegions
}
