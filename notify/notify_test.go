package notify

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func messages(ns []Notice) []string {
	var out []string
	for _, n := range ns {
		out = append(out, n.Message)
	}
	return out
}

func TestNoticeExpiresAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewCenter(0, clock)

	c.Push("a", "Theme updated")
	if got := messages(c.Active("a")); len(got) != 1 || got[0] != "Theme updated" {
		t.Fatalf("Active = %v, want [Theme updated]", got)
	}

	clock.Advance(2 * time.Second)
	c.Push("a", "Changes saved locally")
	if got := c.Active("a"); len(got) != 2 {
		t.Fatalf("expected two live notices, got %v", messages(got))
	}

	clock.Advance(1500 * time.Millisecond)
	got := messages(c.Active("a"))
	if len(got) != 1 || got[0] != "Changes saved locally" {
		t.Fatalf("after 3.5s Active = %v, want only the newer notice", got)
	}

	clock.Advance(3 * time.Second)
	if got := c.Active("a"); got != nil {
		t.Fatalf("expected all notices expired, got %v", messages(got))
	}
}

func TestNoticesArePerKey(t *testing.T) {
	c := NewCenter(time.Minute, clockwork.NewFakeClock())
	c.Push("a", "one")
	c.Push("b", "two")
	if got := messages(c.Active("a")); len(got) != 1 || got[0] != "one" {
		t.Errorf("Active(a) = %v", got)
	}
	c.Forget("b")
	if got := c.Active("b"); got != nil {
		t.Errorf("Active(b) after Forget = %v", messages(got))
	}
}
