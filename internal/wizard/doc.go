// Package wizard is the enrollment step state machine.
//
// A Wizard owns one EnrollmentRecord and the current step. Each input step
// accepts only its own typed partial update, and Next is gated by that
// step's validity predicate:
//
//	StepPersonal -> StepAddress -> StepUtility -> StepSubmitted
//
// The utility field is derived. Changing the ZIP code clears it and, for a
// five character ZIP, hands back a ZipLookup ticket; the lookup result is
// committed with ResolveUtility only if the ticket still matches the live
// ZIP, so a slow response for an old ZIP can never overwrite a newer one.
// Address checks use the same ticket scheme.
//
// A Wizard is owned by a single goroutine and is not safe for concurrent use.
package wizard
