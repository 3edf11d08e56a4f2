package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/specmark/amath/amath"
)

func newTestREPL(t *testing.T) replModel {
	t.Helper()
	m := newREPLModel(amath.New(amath.Options{}))
	t.Cleanup(func() { m.state.Close() })
	return m
}

func TestREPLEvaluateExpression(t *testing.T) {
	m := newTestREPL(t)

	out, isErr := m.evaluate(`amath.to_mathml("x^2")`)
	if isErr {
		t.Fatalf("unexpected error: %s", out)
	}
	if !strings.Contains(out, "<msup><mi>x</mi><mn>2</mn></msup>") {
		t.Fatalf("unexpected output: %q", out)
	}
	if got := m.state.GetGlobal("_").String(); got != out {
		t.Fatalf("expected _ to hold last result, got %q", got)
	}
}

func TestREPLEvaluateStatementDefinesGlobal(t *testing.T) {
	m := newTestREPL(t)

	out, isErr := m.evaluate(`y = 5`)
	if isErr || out != "nil" {
		t.Fatalf("unexpected result: %q (err=%v)", out, isErr)
	}
	names := m.userGlobals()
	if len(names) != 1 || names[0] != "y" {
		t.Fatalf("expected y in user globals, got %v", names)
	}
}

func TestREPLEvaluateReportsErrors(t *testing.T) {
	m := newTestREPL(t)

	out, isErr := m.evaluate(`amath.to_mathml(42)`)
	if !isErr {
		t.Fatalf("expected error, got %q", out)
	}
	if !strings.Contains(out, "string expected, got number") {
		t.Fatalf("unexpected error: %q", out)
	}

	if _, isErr := m.evaluate(`local = `); !isErr {
		t.Fatalf("expected syntax error")
	}
}

func TestREPLRequireWorks(t *testing.T) {
	m := newTestREPL(t)

	out, isErr := m.evaluate(`require("amath").to_mathml("a/b")`)
	if isErr {
		t.Fatalf("unexpected error: %s", out)
	}
	if !strings.Contains(out, "<mfrac>") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestREPLResetClearsGlobals(t *testing.T) {
	m := newREPLModel(amath.New(amath.Options{}))
	if _, isErr := m.evaluate(`y = 5`); isErr {
		t.Fatalf("evaluate failed")
	}

	m, _ = m.handleCommand(":reset")
	defer m.state.Close()

	if names := m.userGlobals(); len(names) != 0 {
		t.Fatalf("expected no user globals after reset, got %v", names)
	}
	last := m.history[len(m.history)-1]
	if last.output != "Environment reset" {
		t.Fatalf("unexpected history entry: %+v", last)
	}
}

func TestREPLUnknownCommand(t *testing.T) {
	m := newTestREPL(t)

	m, _ = m.handleCommand(":bogus")
	last := m.history[len(m.history)-1]
	if !last.isErr || !strings.Contains(last.output, "Unknown command") {
		t.Fatalf("unexpected history entry: %+v", last)
	}
}

func TestREPLAutocomplete(t *testing.T) {
	m := newTestREPL(t)

	m.textInput.SetValue("amath.to")
	m = m.handleAutocomplete()
	if got := m.textInput.Value(); got != "amath.to_mathml" {
		t.Fatalf("unexpected completion: %q", got)
	}
}

func TestUpdateEnterRecordsMathML(t *testing.T) {
	m := newTestREPL(t)
	m.textInput.SetValue(`amath.to_mathml("a/b")`)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if cmd != nil {
		t.Fatalf("expected no command after evaluation")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after evaluation")
	}
	if len(rm.history) != 1 || !rm.history[0].mathml {
		t.Fatalf("expected one MathML history entry, got %+v", rm.history)
	}
	if len(rm.cmdHistory) != 1 {
		t.Fatalf("expected command history entry, got %v", rm.cmdHistory)
	}
}

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newTestREPL(t)
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}
