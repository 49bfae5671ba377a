// Package sanitizer provides input normalization for catalog data.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. Functions handle invalid input gracefully,
// typically by returning empty strings or empty slices rather than errors.
//
// Normalization includes:
//   - Strings: collapse whitespace, trim leading/trailing spaces
//   - Titles/locations/names: whitespace-normalized, original casing kept
//   - Languages: title-cased, deduplicated, empty values dropped
//   - Image URLs: HTTPS enforced, lowercase hosts, tracking parameters removed
package sanitizer
