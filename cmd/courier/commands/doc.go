// Package commands wires the courier CLI: persistent flags for the key
// file and directory, identity bootstrap, and certificate inspection
// helpers.
package commands
