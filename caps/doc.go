// Package caps parses the capability string a DDC/CI display reports about
// itself.
//
// # Capability String Format
//
// The string is a single parenthesized group of key(value) pairs. Values
// are space-separated tokens and may nest further groups:
//
//	(prot(monitor)type(LCD)model(Wacom Cintiq 13HD)cmds(01 02 03 07 0C E3 F3)
//	 vcp(02 04 08 10 12 14(04 05 08 0B) 16 18 1A 52 6C 6E 70 86(03 08) AC AE
//	 B6 C8 DF)mswhql(1)asset_eep(40)mccs_ver(2.1))
//
// The "cmds" and "vcp" values are lists of two-digit hex codes. A group
// directly after a code lists the values that code accepts; above, VCP
// 0x14 (select-color-preset) accepts 0x04, 0x05, 0x08 and 0x0B.
//
// # Usage
//
//	c, err := caps.Parse(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	model, _ := c.Get("model")
//	if values, ok := c.SupportsVCP(0x14); ok {
//	    fmt.Println(model, "color presets:", values.Codes())
//	}
//
// The lower-level ParseTree and Unparse work on any paren-nested string.
//
// # Error Handling
//
// Parse fails with *MalformedError for unbalanced parentheses, data outside
// the root group, repeated keys and bad hex codes, and with
// *OrphanedChildError for a value group that does not follow a code.
package caps
