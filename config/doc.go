// Package config defines the game settings, their defaults, the optional HCL
// settings file and the command line flags that override it.
//
// Precedence, lowest first: Defaults, the file named by -config, explicit flags.
package config
