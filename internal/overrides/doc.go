// Package overrides loads user setting changes from a YAML file.
//
// An overrides document lists the settings to change by store and offset,
// with one value field matching the setting's variant, plus an optional
// reboot flag:
//
//	selections:
//	  - store: CpuSetup
//	    offset: "0x143"
//	    option: Performance
//	  - store: CpuSetup
//	    offset: "0x150"
//	    value: 7
//	  - store: PchSetup
//	    offset: "0x20"
//	    enabled: false
//	reboot: true
//
// Apply validates every entry against a parsed settings model before
// producing a compiler selection: unknown settings, wrong value variants,
// unknown option labels and out-of-range numbers are all rejected up
// front so the compiled script never writes a value the firmware would
// not accept.
package overrides
