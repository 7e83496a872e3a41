package ddc

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/moffa90/go-ddcci/capture"
	"github.com/moffa90/go-ddcci/protocol"
	"github.com/pion/logging"
)

// Client issues DDC/CI requests to one display.
//
// Every exchange is synchronous: the request is written, the mandatory
// processing delay is waited out, and the reply (if any) is read. A Client
// is not safe for concurrent use; the display bus allows one exchange at a
// time.
type Client struct {
	device io.ReadWriter
	config Config
	log    logging.LeveledLogger
}

// New creates a Client talking to device, which must pass whole DDC/CI
// frames: writes start at the 0x6E destination byte, reads start at the
// 0x6E source byte of the reply.
//
// Example:
//
//	port, _ := transport.Open("/dev/ttyUSB0")
//	client := ddc.New(port,
//	    ddc.WithLoggerFactory(factory),
//	    ddc.WithRetries(5),
//	)
func New(device io.ReadWriter, opts ...Option) *Client {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.SessionID == "" {
		cfg.SessionID = capture.NewSessionID()
	}

	c := &Client{
		device: device,
		config: cfg,
	}
	if cfg.LoggerFactory != nil {
		c.log = cfg.LoggerFactory.NewLogger("ddc")
	}
	return c
}

// SessionID returns the identifier written to capture events.
func (c *Client) SessionID() string {
	return c.config.SessionID
}

// GetValue reads the current and maximum value of a VCP control.
// VESA DDC/CI 1.1 section 4.3.
//
// A code outside 0..255 fails with *protocol.InvalidControlCodeError before
// any I/O. A display answering "unsupported VCP code" fails with
// *protocol.UnsupportedCodeError without retrying.
//
// Example:
//
//	reply, err := client.GetValue(ctx, 0x10)
//	fmt.Printf("brightness %d of %d\n", reply.Current, reply.Maximum)
func (c *Client) GetValue(ctx context.Context, code int) (*protocol.VCPReply, error) {
	cmd, err := protocol.BuildGetVCPCmd(code)
	if err != nil {
		return nil, err
	}

	var reply *protocol.VCPReply
	err = c.retry(ctx, capture.OpGetVCP, func(attempt int) error {
		if err := c.write(capture.OpGetVCP, attempt, cmd, protocol.GetVCPDelay); err != nil {
			return err
		}
		msg, err := c.read(capture.OpGetVCP, attempt, protocol.GetVCPDelay)
		if err != nil {
			return err
		}

		r, err := protocol.ParseVCPReply(msg)
		if err != nil {
			return err
		}
		if r.ResultCode != protocol.ResultNoError {
			return &protocol.UnsupportedCodeError{Code: byte(code)}
		}
		if r.Opcode != byte(code) {
			return &protocol.UnexpectedReplyError{
				Operation: "get VCP",
				Reason:    fmt.Sprintf("echoed VCP 0x%02X, requested 0x%02X", r.Opcode, code),
			}
		}
		reply = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logDebug("VCP 0x%02X: current=%d maximum=%d type=0x%02X", code, reply.Current, reply.Maximum, reply.Type)
	return reply, nil
}

// SetValue sets a VCP control. The display does not reply.
// VESA DDC/CI 1.1 section 4.4.
func (c *Client) SetValue(ctx context.Context, code int, value uint16) error {
	cmd, err := protocol.BuildSetVCPCmd(code, value)
	if err != nil {
		return err
	}

	err = c.retry(ctx, capture.OpSetVCP, func(attempt int) error {
		return c.write(capture.OpSetVCP, attempt, cmd, protocol.SetVCPDelay)
	})
	if err != nil {
		return err
	}

	c.logDebug("VCP 0x%02X set to %d", code, value)
	return nil
}

// SaveSettings asks the display to store the current adjustments in
// non-volatile memory. VESA DDC/CI 1.1 section 4.5.
func (c *Client) SaveSettings(ctx context.Context) error {
	cmd := protocol.BuildSaveSettingsCmd()
	return c.retry(ctx, capture.OpSaveSettings, func(attempt int) error {
		return c.write(capture.OpSaveSettings, attempt, cmd, protocol.SaveSettingsDelay)
	})
}

// RequestCapabilities reads the display's capability string page by page
// until the display returns an empty page. VESA DDC/CI 1.1 section 4.6.
//
// Each page is retried on its own; a failure after some pages were read
// discards them.
func (c *Client) RequestCapabilities(ctx context.Context) (string, error) {
	startTime := time.Now()
	var result []byte

	for page := 1; ; page++ {
		offset := uint16(len(result))
		cmd := protocol.BuildCapabilitiesCmd(offset)

		var payload []byte
		err := c.retry(ctx, capture.OpCapabilities, func(attempt int) error {
			if err := c.write(capture.OpCapabilities, attempt, cmd, protocol.CapabilitiesRequestDelay); err != nil {
				return err
			}
			msg, err := c.read(capture.OpCapabilities, attempt, protocol.CapabilitiesReplyDelay)
			if err != nil {
				return err
			}

			echoed, p, err := protocol.ParseCapabilitiesReply(msg)
			if err != nil {
				return err
			}
			if echoed != offset {
				return &protocol.UnexpectedReplyError{
					Operation: "capabilities",
					Reason:    fmt.Sprintf("echoed offset %d, requested %d", echoed, offset),
				}
			}
			payload = p
			return nil
		})
		if err != nil {
			return "", fmt.Errorf("capabilities page at offset %d: %w", offset, err)
		}

		if len(payload) == 0 {
			break
		}
		if len(result)+len(payload) > protocol.MaxCapabilitiesLength {
			return "", fmt.Errorf("capabilities string exceeds %d bytes", protocol.MaxCapabilitiesLength)
		}
		result = append(result, payload...)

		c.reportProgress(Progress{
			Page:        page,
			Offset:      len(result),
			ElapsedTime: time.Since(startTime),
		})
	}

	c.logInfo("read %d capability bytes in %s", len(result), time.Since(startTime))
	return string(result), nil
}

// write sends one frame and waits out the processing delay.
func (c *Client) write(op capture.Op, attempt int, frame []byte, delay time.Duration) error {
	c.record(capture.Event{
		Direction: capture.DirectionOut,
		Op:        op,
		Attempt:   attempt,
		Frame:     frame,
	})
	c.logTrace("write: % X", frame)

	n, err := c.device.Write(frame)
	if err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	if n != len(frame) {
		return &TransportError{Op: "write", Err: io.ErrShortWrite}
	}

	c.sleep(delay)
	return nil
}

// read receives one reply and returns it starting at the synthesized 0x6F
// destination byte, checksum included.
//
// Reply structure as delivered by the device:
//
//	[0x6E][0x80|LEN][DATA...][CHK]
func (c *Client) read(op capture.Op, attempt int, delay time.Duration) ([]byte, error) {
	header := make([]byte, protocol.ReplyHeaderSize)
	if _, err := io.ReadFull(c.device, header); err != nil {
		return nil, &TransportError{Op: "read", Err: err}
	}
	if header[0] != protocol.DisplayAddress {
		return nil, &protocol.UnexpectedReplyError{
			Operation: op.String(),
			Reason:    fmt.Sprintf("reply from address 0x%02X, expected 0x%02X", header[0], protocol.DisplayAddress),
		}
	}

	body := make([]byte, int(header[1]&protocol.LengthMask)+1)
	if _, err := io.ReadFull(c.device, body); err != nil {
		return nil, &TransportError{Op: "read", Err: err}
	}

	msg := make([]byte, 0, 1+len(header)+len(body))
	msg = append(msg, protocol.ReplyDestination)
	msg = append(msg, header...)
	msg = append(msg, body...)

	c.record(capture.Event{
		Direction: capture.DirectionIn,
		Op:        op,
		Attempt:   attempt,
		Frame:     msg,
	})
	c.logTrace("read: % X", msg)

	if _, err := protocol.Deframe(msg); err != nil {
		return nil, err
	}
	if protocol.IsNullMessage(msg) {
		return nil, protocol.ErrNullMessage
	}

	c.sleep(delay)
	return msg, nil
}

// sleep waits d stretched by protocol.SleepMultiplier.
func (c *Client) sleep(d time.Duration) {
	c.config.Sleep(protocol.Scaled(d))
}

// record passes an event to the capture logger if one is configured.
func (c *Client) record(event capture.Event) {
	if c.config.Capture == nil {
		return
	}
	event.Timestamp = time.Now()
	event.SessionID = c.config.SessionID
	c.config.Capture.Log(event)
}

// reportProgress calls the progress callback if configured.
func (c *Client) reportProgress(progress Progress) {
	if c.config.ProgressCallback != nil {
		c.config.ProgressCallback(progress)
	}
}

func (c *Client) logTrace(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Tracef(format, args...)
	}
}

func (c *Client) logDebug(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Debugf(format, args...)
	}
}

func (c *Client) logInfo(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Infof(format, args...)
	}
}
