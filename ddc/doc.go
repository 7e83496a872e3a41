// Package ddc drives the DDC/CI request/reply exchanges with a display.
//
// # Overview
//
// A Client wraps any io.ReadWriter that passes whole DDC/CI frames and
// provides the four host operations:
//   - GetValue reads the current and maximum value of a VCP control
//   - SetValue writes a VCP control
//   - SaveSettings stores the current adjustments in the display
//   - RequestCapabilities reads the paged capability string
//
// # Basic Usage
//
//	port, err := transport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	client := ddc.New(port)
//
//	reply, err := client.GetValue(ctx, 0x10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = client.SetValue(ctx, 0x10, reply.Maximum/2)
//
// # Timing
//
// The display needs time to process each request. The client waits after
// every write and every read, and between failed attempts. All delays are
// stretched by protocol.SleepMultiplier. WithSleepFunc replaces the clock
// the delays are waited on:
//
//	client := ddc.New(device, ddc.WithSleepFunc(func(time.Duration) {}))
//
// # Retries
//
// A failed exchange is repeated from the write, up to Retries extra times
// (default 3). Transport errors, bad checksums, NULL replies and replies
// that do not match the request are retried. An invalid control code and a
// display answering "unsupported VCP code" are not.
//
//	client := ddc.New(device, ddc.WithRetries(5))
//
// When every attempt failed the error is a *RetriesExhaustedError wrapping
// the last attempt's error, so errors.Is and errors.As see through it.
//
// # Logging and Capture
//
// Diagnostics go to a pion/logging logger scoped "ddc". Every frame and
// failed attempt can also be recorded with a capture.Logger:
//
//	fl, _ := capture.NewFileLogger("monitor.ddclog")
//	defer fl.Close()
//
//	client := ddc.New(device,
//	    ddc.WithLoggerFactory(logging.NewDefaultLoggerFactory()),
//	    ddc.WithCapture(fl),
//	)
//
// # Context Support
//
// Each operation checks its context before every attempt. Protocol delays
// already started are waited out.
package ddc
