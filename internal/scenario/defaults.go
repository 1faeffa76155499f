package scenario

func intPtr(v int) *int { return &v }

// defaultWarDepth is the assumed house rule of three face-down cards per war.
const defaultWarDepth = 3

// Defaults returns the built-in scenarios: standard War dealt at random and
// evenly, multi-deck games, and a lopsided aces-versus-the-world game. All of
// them assume a war depth of defaultWarDepth.
func Defaults() *Config {
	return &Config{
		Scenarios: []Scenario{
			{
				Name:        "standard",
				Description: "Standard war (shuffled)",
				WarDepth:    intPtr(defaultWarDepth),
				Deal:        DealSplit,
				Deck:        "1-13x4",
				Output:      "standard_war.json",
			},
			{
				Name:        "standard-even",
				Description: "Standard war (evenly split)",
				WarDepth:    intPtr(defaultWarDepth),
				Deal:        DealFixed,
				Deck:        "1-13x2",
			},
			{
				Name:        "two-deck",
				Description: "2-deck war (evenly split)",
				WarDepth:    intPtr(defaultWarDepth),
				Deal:        DealFixed,
				Deck:        "1-13x4",
			},
			{
				Name:        "twelve-deck",
				Description: "12-deck war (evenly split)",
				WarDepth:    intPtr(defaultWarDepth),
				Deal:        DealFixed,
				Deck:        "1-13x24",
			},
			{
				Name:        "aces",
				Description: "Aces vs. the world",
				WarDepth:    intPtr(defaultWarDepth),
				Deal:        DealFixed,
				Player1:     "13x4",
				Player2:     "1-12x4",
			},
		},
	}
}
