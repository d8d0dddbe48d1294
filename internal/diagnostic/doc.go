// Package diagnostic collects notes about best-effort steps of schema
// derivation that were skipped: unsupported regex patterns and field docs
// that could not be loaded.
package diagnostic
