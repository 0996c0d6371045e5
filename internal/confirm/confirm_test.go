package confirm

import "testing"

func TestConfirm_RunsActionAndCloses(t *testing.T) {
	var g Gate
	ran := 0
	g.Request("p1", "Widget", func() { ran++ })
	if !g.Open() {
		t.Fatal("expected gate open after request")
	}
	if id, label := g.Target(); id != "p1" || label != "Widget" {
		t.Fatalf("unexpected target %q %q", id, label)
	}

	g.Confirm()
	if ran != 1 {
		t.Fatalf("expected action invoked once, got %d", ran)
	}
	if g.Open() {
		t.Fatal("expected gate closed after confirm")
	}

	// confirming again is a no-op
	g.Confirm()
	if ran != 1 {
		t.Fatalf("expected no second invocation, got %d", ran)
	}
}

func TestCancel_DiscardsWithoutInvoking(t *testing.T) {
	var g Gate
	ran := false
	g.Request("p1", "Widget", func() { ran = true })

	g.Cancel()
	if ran {
		t.Fatal("expected action not invoked on cancel")
	}
	if g.Open() {
		t.Fatal("expected gate closed after cancel")
	}
	if id, label := g.Target(); id != "" || label != "" {
		t.Fatalf("expected target cleared, got %q %q", id, label)
	}

	// confirm after cancel must not run the stale action
	g.Confirm()
	if ran {
		t.Fatal("expected stale action discarded")
	}
}

func TestRequest_ReplacesPendingTarget(t *testing.T) {
	var g Gate
	var got string
	g.Request("p1", "Widget", func() { got = "p1" })
	g.Request("p2", "Gadget", func() { got = "p2" })

	g.Confirm()
	if got != "p2" {
		t.Fatalf("expected latest target confirmed, got %q", got)
	}
}
