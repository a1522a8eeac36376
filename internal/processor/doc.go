// Package processor contains the core business logic for command line runs.
// It orchestrates list generation, batch processing and Anki file generation,
// and hands off to the GUI when no topic is given.
package processor
