package domain

// TallyResult is the outcome of one parse-and-aggregate run over a single
// input document.
type TallyResult struct {
	Games []Game

	// Ceiling is the bound the feasibility sum was computed against.
	Ceiling CubeSet

	// FeasibleIDSum is the sum of ids of games whose every round stays
	// within Ceiling.
	FeasibleIDSum int

	// MinSetPowerSum is the sum over games of the power of their minimum
	// covering set.
	MinSetPowerSum int64
}
