package controllers

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"

	"wardrobe-api/models"
)

var (
	feedMu      sync.Mutex
	feedClients = make(map[*websocket.Conn]bool)
)

// OrderFeed keeps an admin dashboard connection open and streams newly
// placed orders to it until the client disconnects.
func OrderFeed(conn *websocket.Conn) {
	feedMu.Lock()
	feedClients[conn] = true
	feedMu.Unlock()

	defer func() {
		feedMu.Lock()
		delete(feedClients, conn)
		feedMu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	feedMu.Lock()
	defer feedMu.Unlock()
	for client := range feedClients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(feedClients, client)
		}
	}
}
