package main

// Status icons for the one-line summaries printed to stderr.
const (
	IconUpdated   = "✓" // README rewritten
	IconUnchanged = "·" // nothing to do
	IconDryRun    = "±" // diff printed, nothing written
)
