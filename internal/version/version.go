// Package version reports the build identity of the engine binary.
package version

// Name is the engine name reported to UCI id and to the command line --version flag.
const Name = "hmbird"

// Number is the engine version reported to UCI id and to the command line --version flag.
const Number = "0.1.0"
