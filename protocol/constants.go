package protocol

import "time"

// ProtocolVersion is the VESA DDC/CI standard revision implemented by this library.
const ProtocolVersion = "1.1"

// Bus addresses per VESA DDC/CI 1.1 section 1.6 "I2C Bus Notation".
const (
	// DisplayAddress is the display's 8-bit DDC/CI address (write form)
	DisplayAddress = 0x6E

	// DisplayI2CAddress is the 7-bit I2C address of the display (0x6E >> 1)
	DisplayI2CAddress = 0x37

	// HostAddress is the source address used by the host in every request
	HostAddress = 0x51

	// ReplyDestination is the destination byte of a display reply. Bridges do
	// not deliver it on read, so it is synthesized rather than read.
	ReplyDestination = 0x6F

	// VirtualHostAddress replaces the first byte when computing the checksum
	// of a reply
	VirtualHostAddress = 0x50
)

// Opcodes per VESA DDC/CI 1.1 section 4.
const (
	// OpGetVCP requests the current and maximum value of a VCP control
	OpGetVCP = 0x01

	// OpGetVCPReply is the opcode of a Get VCP Feature reply
	OpGetVCPReply = 0x02

	// OpSetVCP sets a VCP control
	OpSetVCP = 0x03

	// OpSaveSettings asks the display to store current settings in NVRAM
	OpSaveSettings = 0x0C

	// OpCapabilitiesReply is the opcode of a Capabilities Reply
	OpCapabilitiesReply = 0xE3

	// OpCapabilities requests one page of the capability string
	OpCapabilities = 0xF3
)

// Reply result codes carried by a Get VCP Feature reply.
const (
	// ResultNoError indicates the display recognized the VCP code
	ResultNoError = 0x00

	// ResultUnsupported indicates the VCP code is not supported by the display
	ResultUnsupported = 0x01
)

// Frame layout constants.
const (
	// LengthMask extracts the payload length from the length byte. The top
	// bit is the "low-speed" marker and carries no length information.
	LengthMask = 0x7F

	// LengthFlag is the marker bit OR'ed into every outgoing length byte
	LengthFlag = 0x80

	// ReplyHeaderSize is the number of bytes read before the length is known
	// (source address + length byte)
	ReplyHeaderSize = 2

	// VCPReplySize is the size of a Get VCP Feature reply including the
	// synthesized destination byte and the checksum
	VCPReplySize = 12

	// CapabilitiesHeaderSize is the number of bytes before the capability
	// payload in a reply: dest, src, length, opcode, offset(2)
	CapabilitiesHeaderSize = 6

	// MaxControlCode is the largest valid VCP code
	MaxControlCode = 0xFF

	// MaxCapabilitiesLength bounds the capability string; offsets are 16 bits
	MaxCapabilitiesLength = 0xFFFF
)

// NullMessage is the reply a display sends when it has nothing to report.
// It carries a valid checksum, so it must be detected explicitly.
var NullMessage = []byte{ReplyDestination, DisplayAddress, LengthFlag, 0xBE}

// Per-operation processing delays per VESA DDC/CI 1.1 section 5. The engine
// scales each by SleepMultiplier.
const (
	// GetVCPDelay is the wait after a Get VCP Feature request and its reply
	GetVCPDelay = 40 * time.Millisecond

	// SetVCPDelay is the wait after a Set VCP Feature request
	SetVCPDelay = 50 * time.Millisecond

	// SaveSettingsDelay is the wait after Save Current Settings; the display
	// may be writing non-volatile storage
	SaveSettingsDelay = 200 * time.Millisecond

	// CapabilitiesRequestDelay is the wait after a Capabilities Request
	CapabilitiesRequestDelay = 40 * time.Millisecond

	// CapabilitiesReplyDelay is the wait after reading a Capabilities Reply
	CapabilitiesReplyDelay = 50 * time.Millisecond

	// RetryDelay is the wait after a failed attempt
	RetryDelay = 40 * time.Millisecond

	// SleepMultiplier stretches every delay to tolerate slow bridge chips
	SleepMultiplier = 1.5
)

// Scaled returns d stretched by SleepMultiplier.
func Scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * SleepMultiplier)
}
