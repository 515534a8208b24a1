package main

import "fibseq/cmd"

// Overview:
// - Print a banner and prompt for a count on stdin
// - Validate the count, report and stop if it is not a non-negative number
// - Print that many Fibonacci numbers, labeled by position
// Subcommands cover the non-interactive listing, the wraparound report, profiling and browsing.
func main() {
	cmd.Execute()
}
