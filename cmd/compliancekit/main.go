// Package main provides the entry point for the ComplianceKit CLI.
//
// ComplianceKit audits websites for GDPR compliance. It loads each page
// in a headless browser, inspects cookies, scripts, consent banners, and
// privacy policies, and produces a weighted 0-100 compliance score.
//
// Usage:
//
//	compliancekit scan <url>
//	compliancekit scan --batch 5 <url>...
//
// See --help for all available options.
package main

// main is the entry point for ComplianceKit.
func main() {
	Execute()
}
