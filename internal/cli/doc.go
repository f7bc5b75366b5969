// Package cli defines the devai command tree.
//
// The root command loads an optional dotenv file, reads configuration and
// installs the structured logger before any subcommand runs. Documents are
// printed to stdout; progress lines, logs and errors go to stderr.
package cli
