// Package cli implements the interactive DevClimate terminal application:
// a read-eval-print loop that mediates between user input, the session
// store, and the weather history client, and renders the current page of
// past searches.
package cli
