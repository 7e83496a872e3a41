package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Deframe verifies the checksum of a received message and returns the
// message without its trailing checksum byte.
//
// The message must start with the (synthesized) destination byte. The
// checksum is computed with VirtualHostAddress substituted for that byte.
func Deframe(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, &ChecksumError{Message: raw, Residue: VirtualHostAddress}
	}
	if residue := ChecksumWithDestination(raw, VirtualHostAddress); residue != 0 {
		return nil, &ChecksumError{Message: raw, Residue: residue}
	}
	return raw[:len(raw)-1], nil
}

// IsNullMessage reports whether raw is the NULL message (6F 6E 80 BE).
func IsNullMessage(raw []byte) bool {
	return bytes.Equal(raw, NullMessage)
}

// ParseVCPReply decodes a complete Get VCP Feature reply, checksum included.
//
// Reply structure:
//
//	[0x6F][0x6E][LEN][0x02][RESULT][VCP][TYPE][MAX_H][MAX_L][CUR_H][CUR_L][CHK]
//
// The checksum is not re-verified here; use Deframe first.
func ParseVCPReply(reply []byte) (*VCPReply, error) {
	if len(reply) != VCPReplySize {
		return nil, &UnexpectedReplyError{
			Operation: "get VCP",
			Reason:    fmt.Sprintf("got %d bytes, expected %d", len(reply), VCPReplySize),
		}
	}
	if reply[3] != OpGetVCPReply {
		return nil, &UnexpectedReplyError{
			Operation: "get VCP",
			Reason:    fmt.Sprintf("opcode 0x%02X, expected 0x%02X", reply[3], OpGetVCPReply),
		}
	}

	return &VCPReply{
		ResultCode: reply[4],
		Opcode:     reply[5],
		Type:       reply[6],
		Maximum:    binary.BigEndian.Uint16(reply[7:9]),
		Current:    binary.BigEndian.Uint16(reply[9:11]),
	}, nil
}

// ParseCapabilitiesReply decodes a complete Capabilities Reply, checksum
// included, and returns the echoed offset and the page payload.
// An empty payload marks the end of the capability string.
//
// Reply structure:
//
//	[0x6F][0x6E][LEN][0xE3][OFF_H][OFF_L][DATA...][CHK]
func ParseCapabilitiesReply(reply []byte) (offset uint16, payload []byte, err error) {
	if len(reply) < CapabilitiesHeaderSize+1 {
		return 0, nil, &UnexpectedReplyError{
			Operation: "capabilities",
			Reason:    fmt.Sprintf("got %d bytes, minimum is %d", len(reply), CapabilitiesHeaderSize+1),
		}
	}
	if reply[3] != OpCapabilitiesReply {
		return 0, nil, &UnexpectedReplyError{
			Operation: "capabilities",
			Reason:    fmt.Sprintf("opcode 0x%02X, expected 0x%02X", reply[3], OpCapabilitiesReply),
		}
	}

	offset = binary.BigEndian.Uint16(reply[4:6])
	payload = reply[CapabilitiesHeaderSize : len(reply)-1]
	return offset, payload, nil
}
