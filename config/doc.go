// Package config loads the settings of the pairing command.
//
// A configuration file is plain YAML:
//
//	sum: 8
//	collect_others: true
//	max_rounds: 40
//	tolerance: 1e-10
//	other_limit: 10
//	logging:
//	  level: info
//	  format: json
//
// Load starts from DefaultConfig, merges the file when it exists and then
// applies environment overrides:
//
//	PAIRING_SUM              sum to split
//	PAIRING_COLLECT_OTHERS   true/false
//	PAIRING_LOG_LEVEL        debug, info, warn or error
//
// Command-line arguments are applied last by the caller. Validate reports
// the first invalid field wrapped around one of the sentinel errors below.
package config
