package input

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skater/config"
	"github.com/lixenwraith/skater/engine"
)

func TestProcessKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"Space taps", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentTap},
		{"Enter taps", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentTap},
		{"Up taps", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentTap},
		{"k taps", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), IntentTap},
		{"W taps", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), IntentTap},
		{"p pauses", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentTogglePause},
		{"m mutes", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"Esc quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"Ctrl+C quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"Error quits", tcell.NewEventError(errors.New("closed")), IntentQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMachine().Process(tt.ev)
			if got == nil {
				t.Fatalf("Process() = nil, want %s", tt.want)
			}
			if got.Type != tt.want {
				t.Errorf("Process() = %s, want %s", got.Type, tt.want)
			}
		})
	}
}

func TestProcessUnboundKeys(t *testing.T) {
	m := NewMachine()
	for _, ev := range []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone),
	} {
		if got := m.Process(ev); got != nil {
			t.Errorf("Process(%v) = %s, want nil", ev, got.Type)
		}
	}
}

func TestProcessResize(t *testing.T) {
	got := NewMachine().Process(tcell.NewEventResize(100, 30))
	if got == nil || got.Type != IntentResize || got.Width != 100 || got.Height != 30 {
		t.Errorf("Process(resize) = %+v", got)
	}
}

func TestMouseTapsOnPressEdge(t *testing.T) {
	m := NewMachine()

	steps := []struct {
		buttons tcell.ButtonMask
		tap     bool
	}{
		{tcell.ButtonNone, false}, // motion
		{tcell.Button1, true},     // press
		{tcell.Button1, false},    // drag while held
		{tcell.ButtonNone, false}, // release
		{tcell.Button2, false},    // other button
		{tcell.Button1, true},     // second click
	}

	for i, s := range steps {
		got := m.Process(tcell.NewEventMouse(5, 5, s.buttons, tcell.ModNone))
		if tapped := got != nil && got.Type == IntentTap; tapped != s.tap {
			t.Errorf("step %d: tap = %t, want %t", i, tapped, s.tap)
		}
	}
}

func TestCustomKeyTable(t *testing.T) {
	table := DefaultKeyTable()
	table.Runes['j'] = IntentTap
	if got := NewMachineWith(table).Process(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)); got == nil || got.Type != IntentTap {
		t.Errorf("custom binding not used: %+v", got)
	}
}

func TestIntentString(t *testing.T) {
	if IntentTap.String() != "tap" || IntentType(200).String() != "unknown" {
		t.Error("unexpected intent names")
	}
}

func newContext() *engine.GameContext {
	mock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return engine.NewGameContext(config.Default(), 80, 24, engine.NewPausableClockWith(mock), fixedRoller{})
}

type fixedRoller struct{}

func (fixedRoller) Intn(n int) int { return 0 }

func TestApply(t *testing.T) {
	ctx := newContext()

	if !Apply(ctx, &Intent{Type: IntentTap}) || !ctx.State.IsRunning() {
		t.Fatal("tap should start a run")
	}
	Apply(ctx, &Intent{Type: IntentTogglePause})
	if !ctx.IsPaused.Load() {
		t.Error("pause not applied")
	}
	Apply(ctx, &Intent{Type: IntentToggleMute})
	if !ctx.IsMuted.Load() {
		t.Error("mute not applied")
	}
	Apply(ctx, &Intent{Type: IntentResize, Width: 100, Height: 30})
	if ctx.Width != 100 || ctx.Height != 30 {
		t.Errorf("size = %dx%d", ctx.Width, ctx.Height)
	}
	if !Apply(ctx, nil) {
		t.Error("nil intent should keep running")
	}
	if Apply(ctx, &Intent{Type: IntentQuit}) {
		t.Error("quit should stop the loop")
	}
}
