package main

import "os"

// Exits with code 1 on configuration, parsing or scoring errors; cobra
// has already reported the cause on stderr.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
