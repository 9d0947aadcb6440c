// Package call wraps a single remote operation with the loading/error status
// a form needs to show next to the control that triggered it.
//
// Invocations are not coordinated: a new call overwrites the status of one
// still in flight. Callers that care disable the trigger while Loading.
package call
