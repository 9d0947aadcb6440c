// Package enrollment submits a completed wizard to the backend.
//
// It assembles the subscriber payload from the wizard record, sends it
// through a status-tracking call, and moves the wizard to its terminal
// state on success.
package enrollment
