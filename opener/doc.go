// Package opener opens file channels from a symbolic mode.
//
// A Mode (read, overwrite, append) is resolved into an OptionSet of
// low-level options by the pure function Resolve, after the opener has
// probed the filesystem for existence and permissions. Write modes create
// a missing parent directory before opening.
//
//	f, err := opener.Open("/var/log/app.log", opener.ModeAppend)
//	if err != nil {
//	    switch errors.GetKind(err) {
//	    case errors.KindAccessDenied:
//	        // ...
//	    }
//	}
//	defer f.Close()
//
// Opening through a specific filesystem, with debug logging:
//
//	o := opener.New(billy.NewMemory(), opener.WithLogger(slog.Default()))
//	ch, err := o.OpenChannel("out/report.txt", opener.ModeOverwrite)
package opener
