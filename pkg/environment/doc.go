// Package environment names the deployment environments an fsm binary can
// run in (development, staging, production).
//
// Parse accepts the full names and the short aliases dev, stage and prod; it
// is used by the logger presets and the CLI configuration.
package environment
