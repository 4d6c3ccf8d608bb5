package entities

// ChannelMode selects the real messaging transport or the simulated one.
type ChannelMode string

const (
	ChannelModeProduction ChannelMode = "production"
	ChannelModeSimulation ChannelMode = "simulation"
)

// DraftingMode selects AI-backed drafting or the fixed template.
type DraftingMode string

const (
	DraftingModeAI       DraftingMode = "ai"
	DraftingModeTemplate DraftingMode = "template"
)
