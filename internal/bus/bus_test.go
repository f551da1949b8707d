package bus

import (
	"testing"
	"time"
)

func TestEmitSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("theme.", 10)
	defer unsub()

	b.Emit(ThemeChanged, "mono")

	select {
	case evt := <-ch:
		if evt.Kind != ThemeChanged {
			t.Errorf("got kind %q, want %q", evt.Kind, ThemeChanged)
		}
		if evt.Payload != "mono" {
			t.Errorf("payload = %v, want mono", evt.Payload)
		}
		if evt.Timestamp.IsZero() {
			t.Error("Emit did not stamp the event")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("control.", 10)
	defer unsub()

	b.Emit(ThemeChanged, nil)
	b.Emit(ControlDiagnostic, nil)

	select {
	case evt := <-ch:
		if evt.Kind != ControlDiagnostic {
			t.Errorf("got kind %q, want %q", evt.Kind, ControlDiagnostic)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("theme.", 10)
	unsub()

	b.Emit(ThemeChanged, nil)

	select {
	case evt := <-ch:
		t.Errorf("received event after unsubscribe: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("control.", 1)
	defer unsub()

	b.Emit(ControlLifecycle, 1)
	b.Emit(ControlLifecycle, 2)

	evt := <-ch
	if evt.Payload != 1 {
		t.Errorf("payload = %v, want 1", evt.Payload)
	}
}

func TestNilBusDrops(t *testing.T) {
	var b *Bus
	b.Emit(ThemeChanged, nil)
}
