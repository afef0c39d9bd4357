package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
)

// Event types
const (
	EventReservationCreate = "reservation_create"
	EventReservationCancel = "reservation_cancel"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung koneksi websocket dashboard admin untuk broadcast
// perubahan reservasi secara real-time.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> user id
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set.
func RegisterClient(conn *websocket.Conn, userID string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = userID
}

// UnregisterClient -> melepaskan connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastReservationCreate -> menyiarkan reservasi baru.
func BroadcastReservationCreate(r models.Reservation) {
	broadcast(Message{
		Event: EventReservationCreate,
		Data:  r,
	})
}

// BroadcastReservationCancel -> menyiarkan pembatalan.
func BroadcastReservationCancel(r models.Reservation) {
	broadcast(Message{
		Event: EventReservationCancel,
		Data:  r,
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling event: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending event to client: %v", err)
		}
	}
}
