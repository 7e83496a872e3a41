// Package capture records DDC/CI traffic for later inspection.
//
// Every frame the engine writes or reads, and every failed attempt, can be
// passed to a Logger as an Event. FileLogger appends events to a file as a
// stream of CBOR items with integer keys; Reader streams them back with an
// optional Filter:
//
//	fl, err := capture.NewFileLogger("session.ddclog")
//	if err != nil {
//	    return err
//	}
//	defer fl.Close()
//	client := ddc.New(device, ddc.WithCapture(fl))
//
//	op := capture.OpGetVCP
//	r, err := capture.NewFilteredReader("session.ddclog", capture.Filter{Op: &op})
//
// The ddc-log command prints and summarizes capture files.
package capture
