// Package mothur provides a programmatic session for driving the mothur
// command-line bioinformatics tool through its batch-command protocol.
//
// Each invocation is translated into mothur's textual command syntax,
// wrapped with bookkeeping commands (logfile pinning, current directory and
// file re-assertion, a trailing state dump) and submitted as one batch. The
// streamed output is classified line by line into semantic events — errors,
// warnings, current directory announcements, current file listings, output
// file listings — which update the session state.
//
// End-users typically interact with the engine via the Session façade:
//
//	session := mothur.New(
//	    mothur.WithExecutable("mothur"),
//	    mothur.WithVerbosity(1),
//	)
//	err := session.Command("summary.seqs").Call(ctx, mothur.P("fasta", "stability.fasta"))
//	outputs := session.OutputFiles()
//
// Commands are not validated locally; mothur is the sole authority on
// command names and arguments. A failed command surfaces as an
// ExecutionError while the session itself stays usable for subsequent
// calls. For more details see the individual sub-packages.
package mothur
