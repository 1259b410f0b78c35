package bookingControllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/KelMarrocos/CarRental/middleware"
	"github.com/KelMarrocos/CarRental/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// connections by owner id, so an owner only sees their own bookings
var (
	wsMu      sync.Mutex
	wsClients = make(map[string]map[*websocket.Conn]bool)
)

func registerConn(ownerID string, conn *websocket.Conn) {
	wsMu.Lock()
	defer wsMu.Unlock()
	if wsClients[ownerID] == nil {
		wsClients[ownerID] = make(map[*websocket.Conn]bool)
	}
	wsClients[ownerID][conn] = true
}

func unregisterConn(ownerID string, conn *websocket.Conn) {
	wsMu.Lock()
	defer wsMu.Unlock()
	delete(wsClients[ownerID], conn)
	if len(wsClients[ownerID]) == 0 {
		delete(wsClients, ownerID)
	}
}

// ownerConns snapshots one owner's connections, so callers can write to them
// without holding the registry lock: a stalled socket must not block other
// owners' broadcasts or new registrations.
func ownerConns(ownerID string) []*websocket.Conn {
	wsMu.Lock()
	defer wsMu.Unlock()
	conns := make([]*websocket.Conn, 0, len(wsClients[ownerID]))
	for conn := range wsClients[ownerID] {
		conns = append(conns, conn)
	}
	return conns
}

// GET /api/owner/ws/bookings
func BookingWebSocketHandler(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok || !user.IsOwner() {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	registerConn(user.ID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			unregisterConn(user.ID, conn)
			break
		}
	}
}

// BroadcastBookingUpdate pushes the booking, with car and renter joined, to
// every dashboard connection of its owner. Failures are ignored; the
// dashboard refetch path covers missed updates.
func BroadcastBookingUpdate(db *gorm.DB, bookingID string) {
	var booking models.Booking
	if err := db.Preload("Car").Preload("User").First(&booking, "id = ?", bookingID).Error; err != nil {
		return
	}

	for _, conn := range ownerConns(booking.OwnerID) {
		conn.WriteJSON(booking)
	}
}
