// Package cli parses the wordfinder command line and maps application
// errors to process exit codes: 2 for usage errors, 3 when the dictionary
// does not exist, 1 for any other failure.
package cli
