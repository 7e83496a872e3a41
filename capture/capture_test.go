package capture

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvents(session string, base time.Time) []Event {
	return []Event{
		{Timestamp: base, SessionID: session, Direction: DirectionOut, Op: OpGetVCP, Attempt: 1,
			Frame: []byte{0x6E, 0x51, 0x82, 0x01, 0x10, 0xAC}},
		{Timestamp: base.Add(time.Millisecond), SessionID: session, Direction: DirectionIn, Op: OpGetVCP,
			Category: CategoryError, Attempt: 1, Error: "bad checksum"},
		{Timestamp: base.Add(2 * time.Millisecond), SessionID: session, Direction: DirectionOut, Op: OpGetVCP, Attempt: 2,
			Frame: []byte{0x6E, 0x51, 0x82, 0x01, 0x10, 0xAC}},
		{Timestamp: base.Add(3 * time.Millisecond), SessionID: session, Direction: DirectionIn, Op: OpGetVCP, Attempt: 2,
			Frame: []byte{0x6F, 0x6E, 0x88, 0x02, 0x00, 0x10, 0x00, 0x00, 0x64, 0x00, 0x32, 0xF2}},
		{Timestamp: base.Add(4 * time.Millisecond), SessionID: session, Direction: DirectionOut, Op: OpSetVCP, Attempt: 1,
			Frame: []byte{0x6E, 0x51, 0x84, 0x03, 0x10, 0x00, 0x32, 0x9A}},
	}
}

func writeCapture(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ddclog")
	fl, err := NewFileLogger(path)
	require.NoError(t, err)
	for _, e := range events {
		fl.Log(e)
	}
	require.NoError(t, fl.Close())
	return path
}

func TestEncodeDecodeEvent(t *testing.T) {
	event := testEvents("s1", time.Date(2025, 3, 1, 12, 0, 0, 123456789, time.UTC))[3]

	data, err := EncodeEvent(event)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.True(t, event.Timestamp.Equal(decoded.Timestamp), "nanosecond timestamp must survive")
	assert.Equal(t, event.Frame, decoded.Frame)
	assert.Equal(t, event.Op, decoded.Op)
	assert.Equal(t, event.Direction, decoded.Direction)
}

func TestFileLoggerRoundTrip(t *testing.T) {
	session := NewSessionID()
	events := testEvents(session, time.Now())
	path := writeCapture(t, events)

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	var got []Event
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, e)
	}
	require.Len(t, got, len(events))
	for i := range events {
		assert.Equal(t, events[i].Frame, got[i].Frame)
		assert.Equal(t, events[i].Category, got[i].Category)
		assert.Equal(t, session, got[i].SessionID)
	}
}

func TestFileLoggerAppendsAndIgnoresAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "append.ddclog")

	for i := 0; i < 2; i++ {
		fl, err := NewFileLogger(path)
		require.NoError(t, err)
		fl.Log(Event{SessionID: "s", Op: OpSaveSettings, Direction: DirectionOut})
		require.NoError(t, fl.Close())
		fl.Log(Event{SessionID: "dropped"})
		require.NoError(t, fl.Close(), "Close must be idempotent")
	}

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()
	stats, err := Collect(r)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Events)
	assert.Equal(t, 1, stats.Sessions)
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.ddclog")
	fl, err := NewFileLogger(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				fl.Log(Event{SessionID: "c", Op: OpGetVCP, Frame: []byte{byte(j)}})
			}
		}()
	}
	wg.Wait()
	require.NoError(t, fl.Close())

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()
	stats, err := Collect(r)
	require.NoError(t, err)
	assert.Equal(t, 200, stats.Events)
}

func TestFilteredReader(t *testing.T) {
	base := time.Now()
	events := append(testEvents("a", base), testEvents("b", base.Add(time.Second))...)
	path := writeCapture(t, events)

	in := DirectionIn
	set := OpSetVCP
	errCat := CategoryError
	end := base.Add(time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{name: "all", filter: Filter{}, want: 10},
		{name: "session", filter: Filter{SessionID: "b"}, want: 5},
		{name: "direction", filter: Filter{Direction: &in}, want: 4},
		{name: "op", filter: Filter{Op: &set}, want: 2},
		{name: "errors", filter: Filter{Category: &errCat}, want: 2},
		{name: "time window", filter: Filter{TimeEnd: &end}, want: 5},
		{name: "combined", filter: Filter{SessionID: "a", Direction: &in, Category: &errCat}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			require.NoError(t, err)
			defer r.Close()

			stats, err := Collect(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stats.Events)
		})
	}
}

func TestCollect(t *testing.T) {
	base := time.Now()
	path := writeCapture(t, testEvents("s", base))

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	stats, err := Collect(r)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Events)
	assert.Equal(t, 3, stats.Sent)
	assert.Equal(t, 1, stats.Received)
	assert.Equal(t, 1, stats.Failures)
	assert.Equal(t, []Op{OpGetVCP, OpSetVCP}, stats.Ops())
	assert.Equal(t, 4, stats.ByOp[OpGetVCP])
	assert.True(t, stats.First.Equal(base))
	assert.True(t, stats.Last.Equal(base.Add(4*time.Millisecond)))
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.ddclog"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestParseOpAndDirection(t *testing.T) {
	for _, op := range []Op{OpGetVCP, OpSetVCP, OpSaveSettings, OpCapabilities} {
		parsed, err := ParseOp(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, parsed)
	}
	_, err := ParseOp("reset")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Op(42).String())

	d, err := ParseDirection("OUT")
	require.NoError(t, err)
	assert.Equal(t, DirectionOut, d)
	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestLeveledAdapterAndMultiLogger(t *testing.T) {
	var buf bytes.Buffer
	factory := logging.NewDefaultLoggerFactory()
	factory.Writer = &buf
	factory.DefaultLogLevel = logging.LogLevelTrace

	adapter := NewLeveledAdapter(factory.NewLogger("capture"))
	m := NewMultiLogger(adapter, nil, NoopLogger{})
	for _, e := range testEvents("s", time.Now())[:2] {
		m.Log(e)
	}

	out := buf.String()
	assert.Contains(t, out, "OUT get-vcp 6E 51 82 01 10 AC")
	assert.Contains(t, out, "get-vcp attempt 1 failed: bad checksum")
}
