package caps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCintiq13HD(t *testing.T) {
	c, err := Parse(cintiq13HD)
	require.NoError(t, err)

	assert.Equal(t, []string{"prot", "type", "model", "cmds", "vcp", "mswhql", "asset_eep", "mccs_ver"}, c.Keys)
	assert.Equal(t, map[string]string{
		"prot":      "monitor",
		"type":      "LCD",
		"model":     "Wacom Cintiq 13HD",
		"mswhql":    "1",
		"asset_eep": "40",
		"mccs_ver":  "2.1",
	}, c.Fields)

	assert.Equal(t, CodeSet{0x01: nil, 0x02: nil, 0x03: nil, 0x07: nil, 0x0C: nil, 0xE3: nil, 0xF3: nil}, c.Commands)

	want := CodeSet{
		0x02: nil, 0x04: nil, 0x08: nil, 0x10: nil, 0x12: nil,
		0x14: CodeSet{0x04: nil, 0x05: nil, 0x08: nil, 0x0B: nil},
		0x16: nil, 0x18: nil, 0x1A: nil, 0x52: nil, 0x6C: nil, 0x6E: nil, 0x70: nil,
		0x86: CodeSet{0x03: nil, 0x08: nil},
		0xAC: nil, 0xAE: nil, 0xB6: nil, 0xC8: nil, 0xDF: nil,
	}
	assert.Equal(t, want, c.VCP)
}

func TestCapabilitiesAccessors(t *testing.T) {
	c, err := Parse(cintiq13HD)
	require.NoError(t, err)

	model, ok := c.Get("model")
	assert.True(t, ok)
	assert.Equal(t, "Wacom Cintiq 13HD", model)
	_, ok = c.Get("vcp")
	assert.False(t, ok, "code sets are not plain fields")

	values, ok := c.SupportsVCP(0x14)
	require.True(t, ok)
	assert.Equal(t, []byte{0x04, 0x05, 0x08, 0x0B}, values.Codes())

	values, ok = c.SupportsVCP(0x10)
	assert.True(t, ok)
	assert.Nil(t, values)

	_, ok = c.SupportsVCP(0x60)
	assert.False(t, ok)

	assert.True(t, c.SupportsCommand(0xF3))
	assert.False(t, c.SupportsCommand(0x0D))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x07, 0x0C, 0xE3, 0xF3}, c.Commands.Codes())
}

func TestParseEdgeCases(t *testing.T) {
	t.Run("empty value group", func(t *testing.T) {
		c, err := Parse("(prot(monitor)vcp(10 14()))")
		require.NoError(t, err)
		values, ok := c.SupportsVCP(0x14)
		require.True(t, ok)
		assert.NotNil(t, values, "an empty group is an empty set, not a missing one")
		assert.Empty(t, values)
	})

	t.Run("trailing NUL padding", func(t *testing.T) {
		c, err := Parse("(prot(monitor)type(LCD))\x00\x00")
		require.NoError(t, err)
		assert.Equal(t, "LCD", c.Fields["type"])
	})

	t.Run("surrounding spaces", func(t *testing.T) {
		c, err := Parse(" (prot(monitor) type(LCD) ) ")
		require.NoError(t, err)
		assert.Equal(t, []string{"prot", "type"}, c.Keys)
	})

	t.Run("lower-case hex", func(t *testing.T) {
		c, err := Parse("(vcp(dc(00 f0)))")
		require.NoError(t, err)
		assert.Equal(t, CodeSet{0xDC: CodeSet{0x00: nil, 0xF0: nil}}, c.VCP)
	})

	t.Run("no vcp key", func(t *testing.T) {
		c, err := Parse("(prot(monitor))")
		require.NoError(t, err)
		_, ok := c.SupportsVCP(0x10)
		assert.False(t, ok)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		errMsg   string
		orphaned bool
	}{
		{name: "two roots", input: "(prot(monitor))(type(LCD))", errMsg: "outside of capabilities root"},
		{name: "no root", input: "prot(monitor)", errMsg: "outside of capabilities root"},
		{name: "empty", input: "", errMsg: "outside of capabilities root"},
		{name: "unmatched open", input: "(prot(monitor)type(LCD)", errMsg: "unmatched '('"},
		{name: "stray close", input: "(prot(monitor)))", errMsg: "unmatched ')'"},
		{name: "key without value", input: "(prot(monitor)type)", errMsg: `key "type" has no value`},
		{name: "value without key", input: "((monitor))", errMsg: "has no key"},
		{name: "duplicate key", input: "(prot(monitor)prot(LCD))", errMsg: `duplicate key "prot"`},
		{name: "bad hex code", input: "(vcp(10 XY))", errMsg: `invalid code "XY"`},
		{name: "code too large", input: "(vcp(100))", errMsg: `invalid code "100"`},
		{name: "orphaned child", input: "(vcp((01 02)))", orphaned: true},
		{name: "orphaned nested child", input: "(cmds(01 02((04))))", orphaned: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, c)

			if tt.orphaned {
				var orphan *OrphanedChildError
				require.True(t, errors.As(err, &orphan), "expected OrphanedChildError, got %v", err)
				return
			}
			var malformed *MalformedError
			require.True(t, errors.As(err, &malformed), "expected MalformedError, got %v", err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseFlattensFieldsWithSingleSpaces(t *testing.T) {
	c, err := Parse("(model(Wacom  Cintiq   13HD)vcpname(14(Color Preset)))")
	require.NoError(t, err)
	assert.Equal(t, "Wacom Cintiq 13HD", c.Fields["model"])
	assert.Equal(t, "14 (Color Preset)", c.Fields["vcpname"])
}
