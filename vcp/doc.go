// Package vcp holds the table of known VESA Virtual Control Panel codes.
//
// Every entry carries the code, a canonical kebab-case name, whether the
// control can be read or written, and for enumerated controls (input
// source, color preset, ...) the named values. The table is static; the
// Default registry indexes it by code and by name once at start-up.
//
// Tokens typed by a user resolve numerically first and by name second:
//
//	code, ok := vcp.Resolve("select-color-preset") // 0x14
//	value, ok := vcp.ResolveValue(code, "6500-k")  // 0x05
//
// Unknown codes, names and values are reported with ok == false, never
// with an error.
package vcp
