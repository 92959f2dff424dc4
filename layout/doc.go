// Package layout reads the search parameters recorded by index construction.
//
// Hierarchical layout files start with a JSON configuration block whose lines
// are prefixed with "##":
//
//	##CONFIG:
//	##{
//	##    "chopper_config": {
//	##        "k": 20,
//	##        "window_size": 23,
//	##        "num_hash_functions": 2,
//	##        "false_positive_rate": 0.05
//	##    }
//	##}
//	##ENDCONFIG
//
// Minimiser input files carry their shape and window size in a sidecar
// ".header" file instead.
package layout
