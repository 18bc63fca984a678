// Package script compiles setting selections into setup_var.efi scripts.
//
// Scripts are produced in two phases: Compile walks a parsed settings
// model in its natural order and emits one write directive for every
// selected setting whose value differs from the firmware default, and
// Render serializes the directives into the final shell-style text.
//
// # Compilation rules
//
// A selection equal to the declared default compiles to nothing: the
// script only writes values that actually change firmware state. A
// setting that declares no default always compiles when selected, since
// there is no baseline to skip against. Selections whose value shape does
// not match the setting (an option label for a numeric, say) are dropped.
//
// Each write directive carries a comment naming the setting and the
// human-readable value, followed by the command:
//
//	# Fan Mode: Performance
//	setup_var.efi 0x143 0x2 -s 0x1 -n CpuSetup
//
// One-of writes use the option's raw value, numerics use the chosen
// integer in hex, and checkboxes write 0x1 or 0x0 with a one byte size.
//
// # Reboot directive
//
// When requested, a trailing directive performs a read followed by a
// reboot so the firmware picks up the new variable contents:
//
//	setup_var.efi 0x143 -n CpuSetup -r
//
// The read is anchored at an explicitly configured setting, or at the
// first setting of the model when none is given.
package script
