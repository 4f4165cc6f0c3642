package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/leonardoresende2010-coder/cism-repositorio/database"
	"github.com/leonardoresende2010-coder/cism-repositorio/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)

// BroadcastNote carries newly created community notes to connected students:
// public notes go to everyone, group notes only to the usernames they are
// shared with.
var BroadcastNote = make(chan *models.CommunityNote)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case note := <-BroadcastNote:
			recipients, err := resolveRecipients(note)
			if err != nil {
				log.Printf("Error resolving recipients for note %s: %v", note.ID, err)
				continue
			}
			deliver(note, recipients)
		}
	}
}

// resolveRecipients returns nil for public notes, meaning "every connected
// client".
func resolveRecipients(note *models.CommunityNote) ([]uuid.UUID, error) {
	if note.Visibility != "group" || note.SharedWith == nil {
		return nil, nil
	}

	var usernames []string
	if err := json.Unmarshal([]byte(*note.SharedWith), &usernames); err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	err := database.DB.
		Model(&models.User{}).
		Where("username IN ?", usernames).
		Pluck("id", &ids).Error
	return ids, err
}

func deliver(note *models.CommunityNote, recipients []uuid.UUID) {
	clientsMu.RLock()
	targets := make(map[uuid.UUID]*websocket.Conn)
	if recipients == nil {
		for id, conn := range clients {
			targets[id] = conn
		}
	} else {
		for _, id := range recipients {
			if conn, ok := clients[id]; ok {
				targets[id] = conn
			}
		}
	}
	clientsMu.RUnlock()

	for id, conn := range targets {
		if id == note.UserID {
			continue
		}
		if err := conn.WriteJSON(note); err != nil {
			log.Printf("Error sending note to client %s: %v", id, err)
			conn.Close()
			clientsMu.Lock()
			delete(clients, id)
			clientsMu.Unlock()
		}
	}
}
