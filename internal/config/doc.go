// Package config holds all configuration for the ComplianceKit CLI and
// scan pipeline.
//
// Configuration flows from CLI flags into a single flat Config struct that
// is passed through the application by dependency injection; there is no
// global configuration state. A YAML file (.compliancekit) can additionally
// provide per-hostname overrides (headers, user agent, timeout) that are
// merged into each ScanRequest before scanning.
package config
