package protocol

// VCPReply is the decoded body of a Get VCP Feature reply.
//
// Reply layout (VCPReplySize bytes, destination synthesized):
//
//	[0x6F][0x6E][0x88][0x02][RESULT][VCP][TYPE][MAX_H][MAX_L][CUR_H][CUR_L][CHK]
type VCPReply struct {
	// ResultCode is ResultNoError or ResultUnsupported
	ResultCode byte

	// Opcode is the VCP code echoed by the display
	Opcode byte

	// Type is the VCP type code (0x00 set parameter, 0x01 momentary)
	Type byte

	// Maximum is the largest value the display accepts for this control
	Maximum uint16

	// Current is the present value of the control
	Current uint16
}
