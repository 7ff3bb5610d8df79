// Package cli parses the gridwalk command line, validates it and carries
// process-level concerns such as exit codes. Flags explicitly given on the
// command line override the scenario file and the environment.
package cli
