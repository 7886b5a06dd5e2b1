package input

import "github.com/gdamore/tcell/v2"

// Machine turns raw events into intents
// Tracks the left button so a held click taps once
type Machine struct {
	table     *KeyTable
	mouseDown bool
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return NewMachineWith(DefaultKeyTable())
}

// NewMachineWith creates a machine using table
func NewMachineWith(table *KeyTable) *Machine {
	return &Machine{table: table}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events without a binding
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	case *tcell.EventKey:
		if it := m.table.Lookup(ev.Key(), ev.Rune()); it != IntentNone {
			return &Intent{Type: it}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

// processMouse taps on the press edge of the left button
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !m.mouseDown
	m.mouseDown = down
	if pressed {
		return &Intent{Type: IntentTap}
	}
	return nil
}
