// Package protocol implements the message layer of the VESA DDC/CI protocol.
//
// This package provides functions to build request frames and validate and
// decode reply frames according to the VESA Display Data Channel Command
// Interface Standard, Version 1.1.
//
// # Protocol Overview
//
// Every DDC/CI message is a short byte sequence ending in an XOR checksum:
//
//	Request: [0x6E][0x51][0x80|LEN][OPCODE][ARGS...][CHK]
//	Reply:   [0x6F][0x6E][0x80|LEN][OPCODE][DATA...][CHK]
//
// Where:
//   - 0x6E = display address (7-bit I2C address 0x37)
//   - 0x51 = host source address
//   - LEN = number of bytes between the length byte and the checksum
//   - CHK = XOR of all preceding bytes
//
// Bridges do not deliver the 0x6F destination byte of a reply; readers
// synthesize it. Reply checksums are computed as if the first byte were the
// 0x50 virtual host address, see ChecksumWithDestination.
//
// # Command Builders
//
//	frame, err := protocol.BuildGetVCPCmd(0x10)
//	frame, err := protocol.BuildSetVCPCmd(0x10, 50)
//	frame := protocol.BuildSaveSettingsCmd()
//	frame := protocol.BuildCapabilitiesCmd(offset)
//
// # Reply Parsers
//
//	if _, err := protocol.Deframe(raw); err != nil {
//	    return err // *protocol.ChecksumError
//	}
//	reply, err := protocol.ParseVCPReply(raw)
//	offset, page, err := protocol.ParseCapabilitiesReply(raw)
//
// # Reference
//
// VESA Display Data Channel Command Interface (DDC/CI) Standard, Version 1.1.
package protocol
