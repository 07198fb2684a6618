// Package marp models the Marp CLI as a capability the server can probe
// and invoke, without knowing anything about its internals.
//
// The renderer is an external binary. It is reached through the Runner
// interface: Available performs a version probe, Run spawns one process
// with a constructed argument list and captures its Outcome (exit status
// plus stdout/stderr text). The production implementation is CLI, backed
// by os/exec; tests substitute fakes so no subprocess is ever required.
//
// The package also carries the small amount of static renderer knowledge
// the server needs: the builtin theme list and the output-format to file
// extension table.
package marp
