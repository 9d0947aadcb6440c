// Package api provides the HTTP implementation of the domain.EnrollmentAPI
// interface used by solarenroll.
//
// The enrollment backend validates addresses, maps ZIP codes to the electric
// utility that serves them, and stores subscribers. This package offers a
// concrete JSON client for it.
//
// Supported operations include:
//   - Validating a street address.
//   - Looking up the utility for a ZIP code.
//   - Creating, listing, fetching, patching and deleting subscribers.
//   - Probing backend health.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as *Error carrying the backend's
// message (or "HTTP <status>"); requests that never get a response fail with
// "An unexpected error occurred". There are no retries.
package api
