package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/moffa90/go-ddcci/caps"
	"github.com/moffa90/go-ddcci/ddc"
	"github.com/moffa90/go-ddcci/protocol"
	"github.com/moffa90/go-ddcci/vcp"
	"github.com/pion/logging"
)

// QueryValue is the value token that asks for the current value without
// setting it.
const QueryValue = "?"

// Status is the outcome of a GetSet request.
type Status int

const (
	// StatusQueried means the current value was read and reported
	StatusQueried Status = iota

	// StatusSet means the value was written to the display
	StatusSet

	// StatusSkipped means the request was not carried out; Message says why
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusQueried:
		return "queried"
	case StatusSet:
		return "set"
	case StatusSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result describes the outcome of one GetSet request.
type Result struct {
	Status Status

	// Control and Value are the tokens as given
	Control string
	Value   string

	// Code is the resolved VCP code, zero if the control did not resolve
	Code byte

	// Target is the resolved value to set
	Target uint16

	// Current and Maximum come from the display's Get VCP Feature reply
	Current uint16
	Maximum uint16

	// Message is the human-readable report of the outcome
	Message string
}

// Session holds one opened display: its client, its raw capability string
// and the parsed capabilities.
//
// Like the client, a Session is not safe for concurrent use.
type Session struct {
	client   *ddc.Client
	registry *vcp.Registry
	log      logging.LeveledLogger

	raw      string
	parsed   *caps.Capabilities
	parseErr error
	parsedOK bool
}

// Open creates a client on device and reads the display's capability
// string. The string is parsed on first use.
//
// Example:
//
//	port, _ := transport.Open("/dev/ttyUSB0")
//	defer port.Close()
//
//	s, err := session.Open(ctx, port)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := s.GetSet(ctx, "brightness", "50")
//	fmt.Println(res.Message)
func Open(ctx context.Context, device io.ReadWriter, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var clientOpts []ddc.Option
	if cfg.LoggerFactory != nil {
		clientOpts = append(clientOpts, ddc.WithLoggerFactory(cfg.LoggerFactory))
	}
	clientOpts = append(clientOpts, cfg.ClientOptions...)

	s := &Session{
		client:   ddc.New(device, clientOpts...),
		registry: cfg.Registry,
	}
	if cfg.LoggerFactory != nil {
		s.log = cfg.LoggerFactory.NewLogger("session")
	}

	s.logInfo("requesting capabilities")
	raw, err := s.client.RequestCapabilities(ctx)
	if err != nil {
		return nil, err
	}
	s.raw = raw
	return s, nil
}

// Client returns the underlying client.
func (s *Session) Client() *ddc.Client {
	return s.client
}

// Raw returns the capability string as sent by the display.
func (s *Session) Raw() string {
	return s.raw
}

// Capabilities parses the capability string once and returns the cached
// result, including a parse error, on every call.
func (s *Session) Capabilities() (*caps.Capabilities, error) {
	if !s.parsedOK {
		s.parsed, s.parseErr = caps.Parse(s.raw)
		s.parsedOK = true
		if s.parseErr != nil {
			s.logError("capability string rejected: %v", s.parseErr)
		}
	}
	return s.parsed, s.parseErr
}

// GetSet reads the control and, unless value is QueryValue, sets it.
//
// control and value may be names from the registry or numbers. The current
// value is always read first, to learn the display's maximum. A request the
// display cannot honor (unknown name, control not advertised, value not
// advertised or above the maximum) is returned as a StatusSkipped result with
// no error and nothing written. Errors are reserved for transport and
// protocol failures and for an unparseable capability string.
func (s *Session) GetSet(ctx context.Context, control, value string) (Result, error) {
	res := Result{Control: control, Value: value}

	code, ok := s.registry.Resolve(control)
	if !ok {
		return skip(res, "Ignoring unrecognized VCP code '%s'", control), nil
	}
	res.Code = code

	query := value == QueryValue
	if !query {
		target, ok := s.registry.ResolveValue(code, value)
		if !ok {
			return skip(res, "Ignoring unrecognized VCP value '%s'", value), nil
		}
		res.Target = target
	}

	c, err := s.Capabilities()
	if err != nil {
		return res, err
	}
	allowed, ok := c.SupportsVCP(code)
	if !ok {
		return skip(res, "Ignoring request for %s: VCP code is not supported by this device.", control), nil
	}

	s.logDebug("requesting value of VCP 0x%02X", code)
	reply, err := s.client.GetValue(ctx, int(code))
	if err != nil {
		var unsupported *protocol.UnsupportedCodeError
		if errors.As(err, &unsupported) {
			return skip(res, "Display does not recognize VCP %s", control), nil
		}
		return res, err
	}
	res.Current = reply.Current
	res.Maximum = reply.Maximum

	current := fmt.Sprintf("Current value of VCP %s is %s (maximum = %d)",
		control, s.valueName(code, reply.Current), reply.Maximum)
	if query {
		res.Status = StatusQueried
		res.Message = current
		return res, nil
	}
	s.logDebug("%s", current)

	if allowed != nil && (res.Target > 0xFF || !allowed.Has(byte(res.Target))) {
		return skip(res, "Ignoring request to set VCP %s to %s: Value not one of the supported items: %s",
			control, value, formatCodes(allowed.Codes())), nil
	}
	if res.Target > reply.Maximum {
		return skip(res, "Ignoring request to set VCP %s to %s: Value is outside the supported range 0..%d",
			control, value, reply.Maximum), nil
	}

	if err := s.client.SetValue(ctx, int(code), res.Target); err != nil {
		return res, err
	}
	res.Status = StatusSet
	res.Message = fmt.Sprintf("Set value of VCP %s to %s", control, value)
	s.logInfo("VCP 0x%02X set to %d", code, res.Target)
	return res, nil
}

// Save stores the current adjustments in the display.
func (s *Session) Save(ctx context.Context) error {
	return s.client.SaveSettings(ctx)
}

// Format renders the parsed capabilities with control and value names.
func (s *Session) Format() (string, error) {
	c, err := s.Capabilities()
	if err != nil {
		return "", err
	}
	return FormatCapabilities(c, s.registry), nil
}

func (s *Session) valueName(code byte, value uint16) string {
	if name, ok := s.registry.ValueName(code, value); ok {
		return name
	}
	return strconv.Itoa(int(value))
}

func skip(res Result, format string, args ...interface{}) Result {
	res.Status = StatusSkipped
	res.Message = fmt.Sprintf(format, args...)
	return res
}

// formatCodes renders codes as "[0x04 0x05]".
func formatCodes(codes []byte) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("0x%02X", c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (s *Session) logDebug(format string, args ...interface{}) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

func (s *Session) logInfo(format string, args ...interface{}) {
	if s.log != nil {
		s.log.Infof(format, args...)
	}
}

func (s *Session) logError(format string, args ...interface{}) {
	if s.log != nil {
		s.log.Errorf(format, args...)
	}
}
