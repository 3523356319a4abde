// Package knowledge provides the static lookup tables the detectors
// classify against: the known-cookie registry, the known-tracker registry,
// consent-platform selectors, and the multilingual pattern sets for
// privacy-policy, consent-banner, and disclosure language.
//
// # Design Philosophy
//
// All tables are immutable data built once at construction time
// (configuration-as-data). Detectors receive registries as constructor
// dependencies rather than reaching into package globals, so tests can
// swap in synthetic tables.
//
// Multilingual patterns are modeled as tagged (language, pattern) pairs
// per concept rather than one flattened list, so coverage gaps per
// language are auditable and new languages are additive.
package knowledge
