// Package ddctest provides a simulated DDC/CI display for tests and
// examples.
//
// A Display answers Get VCP Feature, Set VCP Feature, Save Current Settings
// and Capabilities Request frames the way a real scaler does, and records
// everything written to it. Faults can be injected one at a time:
//
//	display := ddctest.NewCintiq13HD()
//	display.Inject(ddctest.FaultReadError, ddctest.FaultCorruptReply)
//
//	client := ddc.New(display)
//	reply, err := client.GetValue(ctx, 0x10) // succeeds on the third attempt
package ddctest
