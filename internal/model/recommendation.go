package model

// RecommendationResult is the outcome of a single recommendation search.
type RecommendationResult struct {
	BestOverall      *Option               `json:"best_overall"`
	BestValuePerUnit *Option               `json:"best_value_per_unit"`
	Guidance         *InsufficientGuidance `json:"guidance,omitempty"`
	Criteria         SearchCriteria        `json:"search_criteria"`
	DataProvenance   Provenance            `json:"data_provenance"`
	Recommendations  []Option              `json:"recommendations"`
	Summary          Summary               `json:"summary"`
}

// Summary holds counters describing a recommendation search.
type Summary struct {
	TotalOptionsFound        int     `json:"total_options_found"`
	AffordableOptions        int     `json:"affordable_options"`
	RecommendationsGenerated int     `json:"recommendations_generated"`
	AverageValuePerUnit      float64 `json:"average_value_per_unit"`
}

// SearchCriteria echoes the inputs of a recommendation search.
type SearchCriteria struct {
	Origin         string          `json:"origin"`
	Destination    string          `json:"destination"`
	TravelDate     string          `json:"travel_date"`
	Preferences    UserPreferences `json:"preferences"`
	AvailableUnits int             `json:"available_units"`
}

// InsufficientGuidance explains how far a balance is from a redemption and
// what can be done with the balance instead.
type InsufficientGuidance struct {
	EarnMore       EarnMoreAdvice `json:"earn_more"`
	Alternatives   []Option       `json:"alternatives"`
	TransferPaths  []TransferPath `json:"transfer_paths"`
	AvailableUnits int            `json:"available_units"`
	RequiredUnits  int            `json:"required_units"`
	UnitsShort     int            `json:"units_short"`
}

// EarnMoreAdvice is the fixed advice for closing a shortfall.
type EarnMoreAdvice struct {
	Description string   `json:"description"`
	Suggestions []string `json:"suggestions"`
}

// TransferPath shows what the balance becomes after moving it to a partner.
type TransferPath struct {
	Name             string  `json:"name"`
	Ratio            float64 `json:"ratio"`
	Bonus            float64 `json:"bonus"`
	TransferredUnits int     `json:"transferred_units"`
	CoversShortfall  bool    `json:"covers_shortfall"`
}
