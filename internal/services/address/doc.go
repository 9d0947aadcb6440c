// Package address runs the two Step 2 lookups: address validation and the
// utility-by-ZIP lookup. Each has its own call status.
package address
