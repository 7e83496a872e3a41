package protocol

import "encoding/binary"

// Frame appends the DDC/CI checksum to message and returns the result.
// The input slice is not modified.
func Frame(message []byte) []byte {
	frame := make([]byte, 0, len(message)+1)
	frame = append(frame, message...)
	return append(frame, Checksum(message))
}

// newRequest starts a request addressed from the host to the display with
// the given opcode and arguments. The length byte counts opcode and arguments.
func newRequest(opcode byte, args ...byte) []byte {
	msg := make([]byte, 0, 4+len(args)+1)
	msg = append(msg, DisplayAddress, HostAddress, byte(LengthFlag|(1+len(args))), opcode)
	return append(msg, args...)
}

// validateCode rejects VCP codes that do not fit in a byte.
func validateCode(code int) error {
	if code < 0 || code > MaxControlCode {
		return &InvalidControlCodeError{Code: code}
	}
	return nil
}

// BuildGetVCPCmd constructs a Get VCP Feature request.
// VESA DDC/CI 1.1 section 4.3.
//
// Frame structure:
//
//	[0x6E][0x51][0x82][0x01][VCP][CHK]
func BuildGetVCPCmd(code int) ([]byte, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	return Frame(newRequest(OpGetVCP, byte(code))), nil
}

// BuildSetVCPCmd constructs a Set VCP Feature request.
// VESA DDC/CI 1.1 section 4.4.
//
// Frame structure:
//
//	[0x6E][0x51][0x84][0x03][VCP][VAL_H][VAL_L][CHK]
func BuildSetVCPCmd(code int, value uint16) ([]byte, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	var v [2]byte
	binary.BigEndian.PutUint16(v[:], value)
	return Frame(newRequest(OpSetVCP, byte(code), v[0], v[1])), nil
}

// BuildSaveSettingsCmd constructs a Save Current Settings request.
// VESA DDC/CI 1.1 section 4.5.
//
// Frame structure:
//
//	[0x6E][0x51][0x81][0x0C][CHK]
func BuildSaveSettingsCmd() []byte {
	return Frame(newRequest(OpSaveSettings))
}

// BuildCapabilitiesCmd constructs a Capabilities Request for the page
// starting at offset. VESA DDC/CI 1.1 section 4.6.
//
// Frame structure:
//
//	[0x6E][0x51][0x83][0xF3][OFF_H][OFF_L][CHK]
func BuildCapabilitiesCmd(offset uint16) []byte {
	var o [2]byte
	binary.BigEndian.PutUint16(o[:], offset)
	return Frame(newRequest(OpCapabilities, o[0], o[1]))
}
