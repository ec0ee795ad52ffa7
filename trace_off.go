//go:build !tagasn1_debug

package tagasn1

/*
trace_off.go is the production build of the tracing facility: every hook
compiles to nothing so instrumentation costs zero once the debug tag is
dropped.
*/

func debugEnter(_ ...any) {}
func debugExit(_ ...any)  {}
func debugInfo(_ ...any)  {}
func debugTLV(_ ...any)   {}
func debugPDU(_ ...any)   {}

func makePacketID() string { return "" }
