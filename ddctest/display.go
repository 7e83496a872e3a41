package ddctest

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/moffa90/go-ddcci/protocol"
)

// DefaultPageSize is the number of capability bytes returned per
// Capabilities Reply, as on most scalers.
const DefaultPageSize = 32

// ErrInjected is returned by Read and Write for injected I/O faults.
var ErrInjected = errors.New("ddctest: injected I/O failure")

// Fault is a one-shot failure consumed by the next matching operation.
type Fault int

const (
	// FaultWriteError makes the next Write fail without reaching the display.
	FaultWriteError Fault = iota

	// FaultReadError makes the next Read fail without consuming data.
	FaultReadError

	// FaultCorruptReply flips a bit in the checksum of the next reply.
	FaultCorruptReply

	// FaultNullReply replaces the next reply with the NULL message.
	FaultNullReply

	// FaultWrongSource makes the next reply come from address 0x6C.
	FaultWrongSource

	// FaultUnsupported answers the next Get VCP Feature request with the
	// "unsupported VCP code" result.
	FaultUnsupported

	// FaultWrongEcho answers the next Get VCP Feature request for a
	// different VCP code.
	FaultWrongEcho
)

// Control is the simulated state of one VCP control.
type Control struct {
	Type    byte
	Maximum uint16
	Current uint16
}

// Display simulates a DDC/CI display behind a bridge that passes whole
// frames. Writes are full request frames starting at 0x6E; reads return the
// reply without its 0x6F destination byte, as a bridge delivers it.
//
// Display implements io.ReadWriter and is safe for concurrent use.
type Display struct {
	mu sync.Mutex

	caps     string
	pageSize int
	controls map[byte]*Control

	pending []byte
	faults  []Fault

	readErr  error
	writeErr error

	writes    [][]byte
	readCalls int
	saves     int
}

// NewDisplay creates a display advertising caps and knowing no controls.
func NewDisplay(caps string) *Display {
	return &Display{
		caps:     caps,
		pageSize: DefaultPageSize,
		controls: make(map[byte]*Control),
	}
}

// Cintiq13HDCapabilities is the capability string of a Wacom Cintiq 13HD.
const Cintiq13HDCapabilities = "(prot(monitor)type(LCD)model(Wacom Cintiq 13HD)cmds(01 02 03 07 0C E3 F3)" +
	"vcp(02 04 08 10 12 14(04 05 08 0B) 16 18 1A 52 6C 6E 70 86(03 08) AC AE B6 C8 DF)" +
	"mswhql(1)asset_eep(40)mccs_ver(2.1))"

// NewCintiq13HD returns a display with the capabilities and typical control
// state of a Wacom Cintiq 13HD.
func NewCintiq13HD() *Display {
	d := NewDisplay(Cintiq13HDCapabilities)
	d.SetControl(0x02, Control{Maximum: 0xFF, Current: 0x01})
	d.SetControl(0x10, Control{Maximum: 100, Current: 50})
	d.SetControl(0x12, Control{Maximum: 100, Current: 50})
	d.SetControl(0x14, Control{Maximum: 0x0B, Current: 0x05})
	for _, c := range []byte{0x16, 0x18, 0x1A, 0x6C, 0x6E, 0x70} {
		d.SetControl(c, Control{Maximum: 100, Current: 100})
	}
	d.SetControl(0x52, Control{Maximum: 0xFF, Current: 0x00})
	d.SetControl(0x86, Control{Maximum: 0x08, Current: 0x03})
	d.SetControl(0xAC, Control{Type: 0x01, Maximum: 0xFFFF, Current: 0x2EF5})
	d.SetControl(0xAE, Control{Type: 0x01, Maximum: 0xFFFF, Current: 0x1770})
	d.SetControl(0xB6, Control{Maximum: 0x08, Current: 0x03})
	d.SetControl(0xC8, Control{Maximum: 0xFF, Current: 0x05})
	d.SetControl(0xDF, Control{Maximum: 0xFFFF, Current: 0x0201})
	return d
}

// SetControl adds or replaces a control.
func (d *Display) SetControl(code byte, c Control) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.controls[code] = &c
}

// SetPageSize changes the number of capability bytes per reply.
func (d *Display) SetPageSize(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n > 0 && n <= 0x7F-protocol.CapabilitiesHeaderSize {
		d.pageSize = n
	}
}

// Inject queues faults. Each is consumed by the next operation it applies to.
func (d *Display) Inject(faults ...Fault) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.faults = append(d.faults, faults...)
}

// SetReadError makes every Read fail with err until cleared with nil.
func (d *Display) SetReadError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.readErr = err
}

// SetWriteError makes every Write fail with err until cleared with nil.
func (d *Display) SetWriteError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writeErr = err
}

// Value returns the current value of a control.
func (d *Display) Value(code byte) (uint16, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.controls[code]
	if !ok {
		return 0, false
	}
	return c.Current, true
}

// Writes returns a copy of every frame written so far.
func (d *Display) Writes() [][]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([][]byte, len(d.writes))
	for i, w := range d.writes {
		out[i] = append([]byte(nil), w...)
	}
	return out
}

// ReadCalls returns the number of Read calls, failed ones included.
func (d *Display) ReadCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readCalls
}

// Saves returns the number of Save Current Settings requests received.
func (d *Display) Saves() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saves
}

// takeFault removes and reports the first queued fault of one of kinds.
func (d *Display) takeFault(kinds ...Fault) (Fault, bool) {
	for i, f := range d.faults {
		for _, k := range kinds {
			if f == k {
				d.faults = append(d.faults[:i], d.faults[i+1:]...)
				return f, true
			}
		}
	}
	return 0, false
}

// Write accepts one request frame.
func (d *Display) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.writeErr != nil {
		return 0, d.writeErr
	}
	if _, ok := d.takeFault(FaultWriteError); ok {
		return 0, ErrInjected
	}
	d.writes = append(d.writes, append([]byte(nil), p...))

	// A display ignores anything it cannot decode; the host then reads
	// the NULL message.
	d.pending = nil
	if len(p) < 5 || p[0] != protocol.DisplayAddress || p[1] != protocol.HostAddress || protocol.Checksum(p) != 0 {
		return len(p), nil
	}
	n := int(p[2] & protocol.LengthMask)
	if len(p) != 3+n+1 || n == 0 {
		return len(p), nil
	}
	d.handle(p[3], p[4:3+n])
	return len(p), nil
}

func (d *Display) handle(opcode byte, args []byte) {
	switch opcode {
	case protocol.OpGetVCP:
		if len(args) != 1 {
			return
		}
		d.replyVCP(args[0])
	case protocol.OpSetVCP:
		if len(args) != 3 {
			return
		}
		if c, ok := d.controls[args[0]]; ok {
			if v := binary.BigEndian.Uint16(args[1:3]); v <= c.Maximum {
				c.Current = v
			}
		}
	case protocol.OpSaveSettings:
		d.saves++
	case protocol.OpCapabilities:
		if len(args) != 2 {
			return
		}
		offset := int(binary.BigEndian.Uint16(args))
		var page []byte
		if offset < len(d.caps) {
			end := offset + d.pageSize
			if end > len(d.caps) {
				end = len(d.caps)
			}
			page = []byte(d.caps[offset:end])
		}
		d.reply(append([]byte{protocol.OpCapabilitiesReply, args[0], args[1]}, page...))
	}
}

func (d *Display) replyVCP(code byte) {
	c, ok := d.controls[code]
	if _, unsupported := d.takeFault(FaultUnsupported); unsupported {
		ok = false
	}
	echo := code
	if _, wrong := d.takeFault(FaultWrongEcho); wrong {
		echo = code + 1
	}
	if !ok {
		d.reply([]byte{protocol.OpGetVCPReply, protocol.ResultUnsupported, echo, 0, 0, 0, 0, 0})
		return
	}
	body := []byte{protocol.OpGetVCPReply, protocol.ResultNoError, echo, c.Type, 0, 0, 0, 0}
	binary.BigEndian.PutUint16(body[4:6], c.Maximum)
	binary.BigEndian.PutUint16(body[6:8], c.Current)
	d.reply(body)
}

// reply queues a reply with the given payload, applying reply faults.
func (d *Display) reply(payload []byte) {
	if _, ok := d.takeFault(FaultNullReply); ok {
		d.pending = append([]byte(nil), protocol.NullMessage[1:]...)
		return
	}

	msg := []byte{protocol.ReplyDestination, protocol.DisplayAddress, byte(protocol.LengthFlag | len(payload))}
	msg = append(msg, payload...)
	msg = append(msg, protocol.ChecksumWithDestination(msg, protocol.VirtualHostAddress))

	if _, ok := d.takeFault(FaultCorruptReply); ok {
		msg[len(msg)-1] ^= 0x01
	}
	if _, ok := d.takeFault(FaultWrongSource); ok {
		msg[1] = 0x6C
	}
	d.pending = msg[1:]
}

// Read returns the next bytes of the pending reply. With no reply pending
// the display answers with the NULL message.
func (d *Display) Read(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.readCalls++
	if d.readErr != nil {
		return 0, d.readErr
	}
	if _, ok := d.takeFault(FaultReadError); ok {
		return 0, ErrInjected
	}
	if len(p) == 0 {
		return 0, nil
	}
	if len(d.pending) == 0 {
		d.pending = append([]byte(nil), protocol.NullMessage[1:]...)
	}
	n := copy(p, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}
