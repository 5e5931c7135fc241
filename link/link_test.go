package link

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"smartchess/internal/testrig"
)

func newTestLink() (*Link, *testrig.Serial, *testrig.Logger) {
	port := &testrig.Serial{}
	log := &testrig.Logger{}
	return New(port, log), port, log
}

func TestSendFraming(t *testing.T) {
	l, port, _ := newTestLink()

	l.Send(MsgModePC)
	l.Send("12")
	l.SendPreview(LabelTo, "e2 → e4")

	require.Equal(t, []string{
		"heypibtn_mode_pc",
		"heypi12",
		"heypityping_to_e2 → e4",
	}, port.Lines())
}

func TestReceiveFiltersAndTrims(t *testing.T) {
	l, port, _ := newTestLink()

	port.Push([]byte("noise\r\n"))
	port.Push([]byte("heyArduinoChooseMode\r\n"))
	port.Push([]byte("\n"))
	port.Push([]byte("  heyArduino  \n"))
	port.Push([]byte("heyArduinome2e4\n"))

	body, ok := l.Receive()
	require.True(t, ok)
	require.Equal(t, "ChooseMode", body)

	body, ok = l.Receive()
	require.True(t, ok)
	require.Equal(t, "me2e4", body)

	_, ok = l.Receive()
	require.False(t, ok)
}

func TestReceivePartialLine(t *testing.T) {
	l, port, _ := newTestLink()

	port.Push([]byte("heyArduinoSetup"))
	_, ok := l.Receive()
	require.False(t, ok)

	port.Push([]byte("Complete\n"))
	d, ok := l.Next()
	require.True(t, ok)
	require.Equal(t, SetupComplete, d.Kind)
}

func TestReceiveDiscardsOverlongLines(t *testing.T) {
	l, port, _ := newTestLink()

	port.PushLine(HostPrefix + strings.Repeat("x", MaxLineBytes))
	port.PushLine(HostPrefix + "GameStart")

	d, ok := l.Next()
	require.True(t, ok)
	require.Equal(t, GameStart, d.Kind)
	require.Equal(t, 1, l.Discarded())
}

func TestReceiveBurstKeepsOrder(t *testing.T) {
	l, port, _ := newTestLink()

	var want []string
	for i := 0; i < 3*mailboxSlots; i++ {
		body := "default_time_" + strings.Repeat("1", i%5+1)
		want = append(want, body)
		port.PushLine(HostPrefix + body)
	}

	var got []string
	for {
		body, ok := l.Receive()
		if !ok {
			break
		}
		got = append(got, body)
	}
	require.Equal(t, want, got)
}

func TestDrain(t *testing.T) {
	l, port, _ := newTestLink()
	port.PushLine("heyArduinoGameStart")
	port.PushLine("heyArduinoturn_white")
	require.Equal(t, 2, l.Drain())
	require.Equal(t, 0, l.Queued())
}

func TestTraceLogs(t *testing.T) {
	l, port, log := newTestLink()
	l.Trace = true
	port.PushLine("heyArduinoGameStart")
	l.Receive()
	l.Send(MsgHint)
	require.Contains(t, log.Lines(), "[link] rx heyArduinoGameStart")
	require.Contains(t, log.Lines(), "[link] tx heypibtn_hint")
}

func TestDeferKeepsOrder(t *testing.T) {
	l, port, _ := newTestLink()
	port.PushLine("heyArduinoGameStart")
	port.PushLine("heyArduinodefault_time_4000")
	port.PushLine("heyArduinohint_g1f3")
	port.PushLine("heyArduinoturn_white")

	// Skip to the hint, setting aside what came before it.
	for {
		body, ok := l.ReceiveFresh()
		require.True(t, ok)
		if body == "hint_g1f3" {
			break
		}
		require.True(t, l.Defer(body))
	}
	require.Equal(t, 3, l.Queued())

	var got []string
	for {
		body, ok := l.Receive()
		if !ok {
			break
		}
		got = append(got, body)
	}
	require.Equal(t, []string{"GameStart", "default_time_4000", "turn_white"}, got)
}

func TestDeferFull(t *testing.T) {
	l, _, _ := newTestLink()
	for i := 0; i < DeferSlots; i++ {
		require.True(t, l.Defer("GameStart"))
	}
	require.True(t, l.DeferFull())
	require.False(t, l.Defer("turn_white"))
	require.Equal(t, DeferSlots, l.Drain())
	require.False(t, l.DeferFull())
}
