// Package cli parses command-line arguments, validates them and maps
// them onto app.Config. Process concerns such as exit codes live here.
package cli
