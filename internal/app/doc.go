// Package app wires application dependencies for the CLI.
//
// It loads Config (YAML file plus environment overrides), builds the HTTP
// client, API client and services from it, and exposes them via the Wire
// struct for commands to use.
package app
