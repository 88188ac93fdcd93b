package internal

import "log"

// Debug gates development-only diagnostics (base spec §4.B: "writes inside
// the compute of an effect are allowed but warned in development"). Off by
// default so production code and tests pay nothing for it; toggled via the
// package-level reactor.SetDebug.
var Debug bool

// warnWriteInsideEffect logs a development-mode warning when a signal is
// written from inside an effect's own compute function. The write is still
// allowed to go through — this is a diagnostic, not a guard — matching base
// spec §4.B's "allowed but warned" wording.
func warnWriteInsideEffect(target, writer *Computation) {
	if !Debug {
		return
	}

	name := writer.name
	if name == "" {
		name = "<anonymous effect>"
	}
	signalName := target.name
	if signalName == "" {
		signalName = "<anonymous signal>"
	}
	log.Printf("reactor: signal %q written from inside effect %q's own compute function", signalName, name)
}
