// Package tui is the interactive terminal front end of the enrollment wizard.
//
// The Model owns its wizard. Backend calls run as tea.Cmds and report back
// through messages carrying the wizard's tickets, so results are applied on
// the Update goroutine and stale ones are dropped by the wizard itself.
package tui
