// Package domain contains the core domain types of the drill runner, such as
// run identifiers and per-case results. These types represent the business
// concepts and are intentionally free of infrastructure concerns so they can
// be shared across packages.
package domain
