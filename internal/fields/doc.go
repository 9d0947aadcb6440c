// Package fields holds the pure input transforms used by the enrollment
// wizard: phone masking, utility display names, ZIP lookup eligibility and
// per-utility account number rules.
package fields
