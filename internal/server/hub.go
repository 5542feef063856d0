package server

import (
	"encoding/json"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"spades-game/internal/bot"
	"spades-game/internal/config"
	"spades-game/internal/database"
	"spades-game/internal/game"
	"spades-game/internal/protocol"
	"spades-game/internal/shared"

	"github.com/google/uuid"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

const gameCodeLength = 5 // length of the unique game code

// Hub manages active WebSocket connections, lobbies, and game sessions.
type Hub struct {
	clients        map[*Client]bool
	lobbies        map[string][]*Client      // game code -> clients waiting in the lobby
	games          map[string]*game.Session  // game code -> running session
	clientToGame   map[*Client]string        // client -> game code (lobby or active game)
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	clientMu       sync.RWMutex
	lobbyMu        sync.RWMutex
	gameMu         sync.RWMutex
	rng            *rand.Rand
	store          *database.Service
	cfg            config.Config
}

// NewHub creates a new Hub instance.
func NewHub(store *database.Service, cfg config.Config) *Hub {
	source := rand.NewSource(time.Now().UnixNano())

	return &Hub{
		clients:        make(map[*Client]bool),
		lobbies:        make(map[string][]*Client),
		games:          make(map[string]*game.Session),
		clientToGame:   make(map[*Client]string),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		rng:            rand.New(source),
		store:          store,
		cfg:            cfg,
	}
}

// generateGameCode creates a unique alphanumeric game code.
func (h *Hub) generateGameCode() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	for {
		var sb strings.Builder
		for i := 0; i < gameCodeLength; i++ {
			sb.WriteByte(letters[h.rng.Intn(len(letters))])
		}
		code := sb.String()

		h.lobbyMu.RLock()
		_, lobbyExists := h.lobbies[code]
		h.lobbyMu.RUnlock()

		h.gameMu.RLock()
		_, gameExists := h.games[code]
		h.gameMu.RUnlock()

		if !lobbyExists && !gameExists {
			return code
		}
		log.Printf("Generated game code %s collided, retrying...", code)
	}
}

// Run starts the Hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			client.ID = uuid.NewString()
			log.Printf("Client %s (%s) connected", client.ID, client.conn.RemoteAddr())
			h.clientMu.Lock()
			h.clients[client] = true
			h.clientMu.Unlock()

		case client := <-h.unregister:
			h.clientMu.Lock()
			gameCode, inGameOrLobby := h.clientToGame[client]
			_, clientExists := h.clients[client]

			if clientExists {
				delete(h.clients, client)
				delete(h.clientToGame, client)
				close(client.send)
				log.Printf("Client %s (%s) disconnected", client.ID, client.Name)
			}
			h.clientMu.Unlock()

			if inGameOrLobby {
				h.removeFromLobbyOrGame(client, gameCode)
			} else if clientExists {
				log.Printf("Client %s disconnected before joining/creating a game.", client.ID)
			}

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)
		}
	}
}

// removeFromLobbyOrGame cleans up a disconnected client's lobby seat or
// notifies the running session, which treats it as a forfeit.
func (h *Hub) removeFromLobbyOrGame(client *Client, gameCode string) {
	h.lobbyMu.Lock()
	lobby, lobbyExists := h.lobbies[gameCode]
	if lobbyExists {
		newLobby := []*Client{}
		for _, c := range lobby {
			if c != client {
				newLobby = append(newLobby, c)
			}
		}
		if len(newLobby) > 0 {
			h.lobbies[gameCode] = newLobby
			log.Printf("Client %s removed from lobby %s.", client.ID, gameCode)
			h.broadcastLobbyUpdate(gameCode, newLobby)
		} else {
			delete(h.lobbies, gameCode)
			log.Printf("Client %s left lobby %s. Lobby deleted.", client.ID, gameCode)
		}
		h.lobbyMu.Unlock()
		return
	}
	h.lobbyMu.Unlock()

	h.gameMu.RLock()
	session, gameExists := h.games[gameCode]
	h.gameMu.RUnlock()

	if gameExists {
		log.Printf("Client %s was in game %s. Notifying session.", client.ID, gameCode)
		go session.HandleDisconnect(client.ID)
	} else {
		log.Printf("Client %s disconnected but was mapped to non-existent game/lobby code %s", client.ID, gameCode)
	}
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case "create_game":
		h.handleCreateGame(client, msg)
	case "join_game":
		h.handleJoinGame(client, msg)
	case "start_game":
		h.handleStartGame(client)
	case "submit_bid", "play_card":
		h.handleGameAction(client, msg)
	case "ping":
		pongMsg, _ := protocol.NewMessage("pong", nil)
		client.send <- pongMsg
	default:
		log.Printf("Received unknown message type '%s' from client %s (%s)", msg.Type, client.ID, client.Name)
		h.sendErrorToClient(client, "Unknown message type.")
	}
}

// handleCreateGame handles a request to create a new game lobby.
func (h *Hub) handleCreateGame(client *Client, msg protocol.Message) {
	h.clientMu.RLock()
	_, alreadyInGame := h.clientToGame[client]
	h.clientMu.RUnlock()
	if alreadyInGame {
		log.Printf("Client %s tried to create game but is already associated with one.", client.ID)
		h.sendErrorToClient(client, "Already in a game or lobby.")
		return
	}

	var payload protocol.CreateGamePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("Error unmarshalling create_game payload from client %s: %v", client.ID, err)
		h.sendErrorToClient(client, "Invalid create_game message format.")
		return
	}
	if payload.Name == "" {
		log.Printf("Client %s tried to create game with an empty name.", client.ID)
		h.sendErrorToClient(client, "Name cannot be empty.")
		return
	}

	gameCode := h.generateGameCode()

	h.clientMu.Lock()
	client.Name = payload.Name
	h.clientToGame[client] = gameCode
	h.clientMu.Unlock()

	h.lobbyMu.Lock()
	h.lobbies[gameCode] = []*Client{client}
	h.lobbyMu.Unlock()

	log.Printf("Client %s (%s) created lobby %s", client.ID, client.Name, gameCode)

	createdMsg, _ := protocol.NewMessage("game_created", protocol.GameCreatedPayload{GameCode: gameCode})
	h.sendMessageToClient(client.ID, createdMsg)

	h.broadcastLobbyUpdate(gameCode, []*Client{client})
}

// handleJoinGame handles a request to join an existing game lobby.
func (h *Hub) handleJoinGame(client *Client, msg protocol.Message) {
	h.clientMu.RLock()
	_, alreadyInGame := h.clientToGame[client]
	h.clientMu.RUnlock()
	if alreadyInGame {
		log.Printf("Client %s tried to join game but is already associated with one.", client.ID)
		h.sendJoinError(client, "Already in a game or lobby.")
		return
	}

	var payload protocol.JoinGamePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("Error unmarshalling join_game payload from client %s: %v", client.ID, err)
		h.sendJoinError(client, "Invalid join_game message format.")
		return
	}
	if payload.Name == "" {
		log.Printf("Client %s tried to join with an empty name.", client.ID)
		h.sendJoinError(client, "Name cannot be empty.")
		return
	}
	if payload.GameCode == "" {
		log.Printf("Client %s tried to join without a game code.", client.ID)
		h.sendJoinError(client, "Game code cannot be empty.")
		return
	}
	gameCode := strings.ToUpper(payload.GameCode)

	h.lobbyMu.Lock()
	lobby, lobbyExists := h.lobbies[gameCode]
	if !lobbyExists {
		h.lobbyMu.Unlock()
		log.Printf("Client %s tried to join non-existent lobby %s", client.ID, gameCode)
		h.sendJoinError(client, "Game code not found.")
		return
	}

	if len(lobby) >= shared.SeatCount {
		h.lobbyMu.Unlock()
		log.Printf("Client %s tried to join full lobby %s", client.ID, gameCode)
		h.sendJoinError(client, "Game lobby is full.")
		return
	}

	for _, existingClient := range lobby {
		if existingClient.Name == payload.Name {
			h.lobbyMu.Unlock()
			log.Printf("Client %s tried to join lobby %s with duplicate name '%s'", client.ID, gameCode, payload.Name)
			h.sendJoinError(client, "Name already taken in this lobby.")
			return
		}
	}

	client.Name = payload.Name
	newLobby := append(lobby, client)
	h.lobbies[gameCode] = newLobby
	h.lobbyMu.Unlock()

	h.clientMu.Lock()
	h.clientToGame[client] = gameCode
	h.clientMu.Unlock()

	log.Printf("Client %s (%s) joined lobby %s. Lobby size: %d", client.ID, client.Name, gameCode, len(newLobby))

	h.broadcastLobbyUpdate(gameCode, newLobby)

	// A full table starts immediately; smaller lobbies wait for the
	// creator's start_game, which fills the empty seats with bots.
	if len(newLobby) == shared.SeatCount {
		h.startGame(gameCode)
	}
}

// handleStartGame lets the lobby creator start with fewer than four
// humans; the remaining seats are taken by automated players.
func (h *Hub) handleStartGame(client *Client) {
	h.clientMu.RLock()
	gameCode, inLobby := h.clientToGame[client]
	h.clientMu.RUnlock()
	if !inLobby {
		h.sendErrorToClient(client, "You are not in a lobby.")
		return
	}

	h.lobbyMu.RLock()
	lobby, lobbyExists := h.lobbies[gameCode]
	h.lobbyMu.RUnlock()
	if !lobbyExists {
		h.sendErrorToClient(client, "Lobby not found or game already started.")
		return
	}
	if len(lobby) == 0 || lobby[0] != client {
		log.Printf("Client %s tried to start lobby %s but is not its creator.", client.ID, gameCode)
		h.sendErrorToClient(client, "Only the lobby creator can start the game.")
		return
	}

	h.startGame(gameCode)
}

// startGame promotes a lobby into a running session, filling empty seats
// with bots.
func (h *Hub) startGame(gameCode string) {
	h.gameMu.Lock()
	h.lobbyMu.Lock()

	lobby, lobbyExists := h.lobbies[gameCode]
	if !lobbyExists || len(lobby) == 0 || len(lobby) > shared.SeatCount {
		log.Printf("Error: lobby %s state changed unexpectedly before game start. Aborting start.", gameCode)
		h.lobbyMu.Unlock()
		h.gameMu.Unlock()
		return
	}

	var occupants [shared.SeatCount]game.Occupant
	for i := 0; i < shared.SeatCount; i++ {
		if i < len(lobby) {
			occupants[i] = game.Occupant{ClientID: lobby[i].ID, Name: lobby[i].Name}
		} else {
			occupants[i] = game.Occupant{
				Name:  shared.SeatIndex(i).String() + " (bot)",
				Brain: bot.New(),
			}
		}
	}

	session := game.NewSession(occupants, h.cfg.WinningScore, h.store, h.cfg.BotDelay)
	h.games[gameCode] = session
	delete(h.lobbies, gameCode)

	h.lobbyMu.Unlock()
	h.gameMu.Unlock()

	log.Printf("Game session created for code %s with ID %s. Players: %v", gameCode, session.ID, playerNames(lobby))

	go session.Start(h.sendMessageToClient)
}

// handleGameAction forwards bids and card plays to the correct session.
func (h *Hub) handleGameAction(client *Client, msg protocol.Message) {
	h.clientMu.RLock()
	gameCode, inGame := h.clientToGame[client]
	h.clientMu.RUnlock()

	if !inGame {
		log.Printf("Received '%s' from client %s not in any game/lobby.", msg.Type, client.ID)
		h.sendErrorToClient(client, "You are not in an active game or lobby.")
		return
	}

	h.gameMu.RLock()
	session, gameExists := h.games[gameCode]
	h.gameMu.RUnlock()

	if !gameExists {
		log.Printf("Received '%s' from client %s for game code %s, but session not found (maybe still in lobby or game ended?).", msg.Type, client.ID, gameCode)
		h.sendErrorToClient(client, "Game not found or not active.")
		return
	}

	session.HandleAction(client.ID, msg)
}

// Helper to get player names for logging
func playerNames(players []*Client) []string {
	names := make([]string, len(players))
	for i, p := range players {
		if p != nil {
			names[i] = p.Name
		} else {
			names[i] = "<nil>"
		}
	}
	return names
}

// sendMessageToClient allows the session to send messages back via the
// hub/client. This is passed as a callback to the session.
func (h *Hub) sendMessageToClient(clientID string, message []byte) {
	h.clientMu.RLock()
	var targetClient *Client
	for client := range h.clients {
		if client.ID == clientID {
			targetClient = client
			break
		}
	}
	h.clientMu.RUnlock()

	if targetClient == nil {
		log.Printf("Could not find client %s to send message (already disconnected?).", clientID)
		return
	}

	select {
	case targetClient.send <- message:
	default:
		// Channel is blocked or closed, assume client disconnected.
		log.Printf("Failed to send message to client %s (channel full or closed), initiating cleanup.", clientID)
		go func() {
			h.clientMu.RLock()
			_, stillConnected := h.clients[targetClient]
			h.clientMu.RUnlock()
			if stillConnected {
				h.unregister <- targetClient
			}
		}()
	}
}

// broadcastToLobby sends a message to all clients currently in a specific lobby.
func (h *Hub) broadcastToLobby(gameCode string, message []byte) {
	h.lobbyMu.RLock()
	lobby, exists := h.lobbies[gameCode]
	if !exists {
		h.lobbyMu.RUnlock()
		log.Printf("Warning: tried to broadcast to non-existent lobby %s", gameCode)
		return
	}
	clientsToSend := make([]*Client, len(lobby))
	copy(clientsToSend, lobby)
	h.lobbyMu.RUnlock()

	for _, client := range clientsToSend {
		if client == nil {
			continue
		}
		select {
		case client.send <- message:
		default:
			log.Printf("Failed to send lobby message to client %s (channel full or closed)", client.ID)
			go func(c *Client) {
				h.clientMu.RLock()
				_, stillConnected := h.clients[c]
				h.clientMu.RUnlock()
				if stillConnected {
					h.unregister <- c
				}
			}(client)
		}
	}
}

// broadcastLobbyUpdate sends the current list of players in the lobby.
func (h *Hub) broadcastLobbyUpdate(gameCode string, lobby []*Client) {
	playerInfos := make([]protocol.PlayerInfo, len(lobby))
	for i, c := range lobby {
		if c != nil {
			playerInfos[i] = protocol.PlayerInfo{ID: c.ID, Name: c.Name, Seat: shared.SeatIndex(i)}
		}
	}
	msgBytes, err := protocol.NewMessage("lobby_update", protocol.LobbyUpdatePayload{Players: playerInfos})
	if err != nil {
		log.Printf("Error creating lobby_update message for lobby %s: %v", gameCode, err)
		return
	}
	h.broadcastToLobby(gameCode, msgBytes)
}

// sendErrorToClient sends a generic error message to a specific client.
func (h *Hub) sendErrorToClient(client *Client, errorMsg string) {
	msgBytes, err := protocol.NewMessage("error", protocol.ErrorPayload{Message: errorMsg})
	if err != nil {
		log.Printf("Error creating error message for client %s: %v", client.ID, err)
		return
	}
	h.sendMessageToClient(client.ID, msgBytes)
}

// sendJoinError sends a specific join error message to a client.
func (h *Hub) sendJoinError(client *Client, errorMsg string) {
	msgBytes, err := protocol.NewMessage("join_error", protocol.JoinErrorPayload{Message: errorMsg})
	if err != nil {
		log.Printf("Error creating join_error message for client %s: %v", client.ID, err)
		return
	}
	h.sendMessageToClient(client.ID, msgBytes)
}
