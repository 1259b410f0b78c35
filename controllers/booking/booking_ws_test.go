package bookingControllers

import (
	"testing"

	"github.com/gorilla/websocket"
)

func TestConnRegistryIsScopedPerOwner(t *testing.T) {
	a1, a2, b1 := &websocket.Conn{}, &websocket.Conn{}, &websocket.Conn{}

	registerConn("owner-a", a1)
	registerConn("owner-a", a2)
	registerConn("owner-b", b1)
	defer func() {
		unregisterConn("owner-a", a1)
		unregisterConn("owner-a", a2)
		unregisterConn("owner-b", b1)
	}()

	if got := ownerConns("owner-a"); len(got) != 2 {
		t.Fatalf("owner-a conns = %d, want 2", len(got))
	}
	for _, conn := range ownerConns("owner-b") {
		if conn != b1 {
			t.Fatal("owner-b snapshot contains another owner's connection")
		}
	}
	if got := ownerConns("owner-c"); len(got) != 0 {
		t.Fatalf("unknown owner conns = %d, want 0", len(got))
	}
}

func TestUnregisterConnDropsEmptyOwners(t *testing.T) {
	conn := &websocket.Conn{}
	registerConn("owner-x", conn)
	unregisterConn("owner-x", conn)

	if got := ownerConns("owner-x"); len(got) != 0 {
		t.Fatalf("conns after unregister = %d, want 0", len(got))
	}

	wsMu.Lock()
	_, stillThere := wsClients["owner-x"]
	wsMu.Unlock()
	if stillThere {
		t.Fatal("empty owner entry must be dropped from the registry")
	}
}

func TestOwnerConnsReturnsSnapshot(t *testing.T) {
	conn := &websocket.Conn{}
	registerConn("owner-y", conn)
	defer unregisterConn("owner-y", conn)

	snapshot := ownerConns("owner-y")

	// mutating the registry after the snapshot must not affect it, since
	// broadcast writes iterate the snapshot outside the lock
	other := &websocket.Conn{}
	registerConn("owner-y", other)
	defer unregisterConn("owner-y", other)

	if len(snapshot) != 1 || snapshot[0] != conn {
		t.Fatalf("snapshot changed after registry mutation: %v", snapshot)
	}
}
