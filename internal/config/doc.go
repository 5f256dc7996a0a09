// Package config loads and validates the riskyexpand configuration.
//
// Three files live under $XDG_CONFIG_HOME/riskyexpand/:
//
//   - triggers.conf: line-oriented "trigger: expansion" pairs
//   - commands.conf: line-oriented "name: combo" pairs
//   - settings.toml: daemon settings (timeouts, device override, ...)
//
// Trigger and command files are parsed into a validated Snapshot:
// command registry, compiled expansion cache, and trigger matcher are
// all built once at load. Reloads build a complete new Snapshot and
// swap it atomically through a Store; a dispatch already in flight
// keeps running against the snapshot it started with.
package config
