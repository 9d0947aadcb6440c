// Package commands defines the solarenroll CLI and wires dependencies for subcommands.
//
// Commands
//
//   - enroll            Run the enrollment wizard (interactive, or --answers FILE)
//   - utility           Look up the electric utility serving a ZIP code
//   - validate-address  Check an address with the backend geocoder
//   - subscribers       List, show, update or delete enrolled subscribers
//   - health            Probe the backend
//   - config init       Write a default config file
//
// # Implementation
//
// The root command loads configuration (file, then environment, then flags),
// builds the logger and the dependency graph before any subcommand runs, so
// handlers share one HTTP client with the configured timeout.
package commands
