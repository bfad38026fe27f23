// Package control serves the websocket control channel.
package control

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/frudas24/deskremote/internal/auth"
	"github.com/frudas24/deskremote/internal/command"
	"github.com/gorilla/websocket"
)

// ConnPolicy controls how additional control connections are handled.
type ConnPolicy int

const (
	// ConnReject rejects new connections when one is active.
	ConnReject ConnPolicy = iota
	// ConnReplace closes the active connection when a new one arrives.
	ConnReplace
)

// Dispatcher is the subset of the dispatch engine used by the channel.
type Dispatcher interface {
	Press(button string) error
	Exec(name string) (string, error)
}

// Server handles websocket control input.
type Server struct {
	mu         sync.Mutex
	upgrader   websocket.Upgrader
	dispatcher Dispatcher
	policy     ConnPolicy
	guard      *auth.Guard
	conn       *websocket.Conn
	closed     bool
}

// NewServer creates a control websocket server. guard may be nil.
func NewServer(dispatcher Dispatcher, policy ConnPolicy, guard *auth.Guard) *Server {
	return &Server{
		dispatcher: dispatcher,
		policy:     policy,
		guard:      guard,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.guard != nil && !s.guard.Check(r) {
		s.guard.Reject(w)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		s.rejectConn(conn, err.Error())
		return
	}
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if err := conn.WriteJSON(s.handleMessage(msg)); err != nil {
			return
		}
	}
}

// acceptConn applies the connection policy.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("control channel closed")
	}
	if s.conn != nil {
		switch s.policy {
		case ConnReplace:
			_ = s.conn.Close()
			s.conn = nil
		default:
			return fmt.Errorf("control connection already active")
		}
	}
	s.conn = conn
	return nil
}

// Close drops the active connection and rejects later ones. http.Server.Shutdown
// does not close hijacked connections, so serve registers this as a shutdown hook.
func (s *Server) Close() {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.closed = true
	s.mu.Unlock()
	if conn != nil {
		s.rejectConn(conn, "server shutting down")
	}
}

// rejectConn sends a policy violation close and closes the socket.
func (s *Server) rejectConn(conn *websocket.Conn, reason string) {
	message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(1*time.Second))
	_ = conn.Close()
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// handleMessage dispatches a single control message and builds its reply.
func (s *Server) handleMessage(msg Message) Reply {
	reply := Reply{T: MsgResult, Seq: msg.Seq}
	switch msg.T {
	case MsgPress:
		if err := s.dispatcher.Press(msg.Button); err != nil {
			log.Printf("press: %s: %v", msg.Button, err)
			reply.Detail = "Failed to press key: " + err.Error()
			return reply
		}
		reply.OK = true
	case MsgExec:
		id, err := s.dispatcher.Exec(msg.Command)
		if err != nil {
			if errors.Is(err, command.ErrUnknownCommand) {
				reply.Detail = "Unknown command: " + msg.Command
			} else {
				reply.Detail = "Failed to execute command: " + err.Error()
			}
			log.Printf("exec: %s: %v", msg.Command, err)
			return reply
		}
		reply.OK = true
		reply.ID = id
	default:
		reply.Detail = fmt.Sprintf("unsupported message type %q", msg.T)
	}
	return reply
}
