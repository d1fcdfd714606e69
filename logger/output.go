package logger

// Output controls what categories of information the CLI prints at each
// verbosity level, independent of log severity.
//
// Verbosity Levels:
//
//	0 (default) - files written, diagnostics, final status
//	1 (-v)      - + files written and per-example verify results
//	2 (-vv)     - + per-variant resolution, timing, config loaded
//	3 (-vvv)    - + token lists produced while verifying
//	4 (-vvvv)   - + full generated source

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults     OutputCategory = iota // Command output, files written
	OutputDiagnostics                       // Schema errors and warnings
	OutputUserStatus                        // Final success/failure status

	// Level 1 (-v) - Informational
	OutputProgress     // Per-file progress
	OutputSkippedCases // Per-example verify results, including skipped cases

	// Level 2 (-vv) - Detailed
	OutputResolution // Strategy chosen for each variant
	OutputTiming     // Phase timing
	OutputConfig     // Config values loaded

	// Level 3 (-vvv) - Debug
	OutputTokens // Token lists rendered during verification

	// Level 4 (-vvvv) - Full dump
	OutputSource // Full generated Go source
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:     VerbosityUser,
	OutputDiagnostics: VerbosityUser,
	OutputUserStatus:  VerbosityUser,

	OutputProgress:     VerbosityInfo,
	OutputSkippedCases: VerbosityInfo,

	OutputResolution: VerbosityDebug,
	OutputTiming:     VerbosityDebug,
	OutputConfig:     VerbosityDebug,

	OutputTokens: VerbosityTrace,

	OutputSource: VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:      "results",
	OutputDiagnostics:  "diagnostics",
	OutputUserStatus:   "status",
	OutputProgress:     "progress",
	OutputSkippedCases: "skipped-cases",
	OutputResolution:   "resolution",
	OutputTiming:       "timing",
	OutputConfig:       "config",
	OutputTokens:       "tokens",
	OutputSource:       "source",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
