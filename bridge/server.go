package bridge

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ChannelServer answers handshakes and routes invokes on the host side.
// It is an http.Handler: mount it wherever the host exposes its channel
// endpoint. Each accepted socket is one independent session.
type ChannelServer struct {
	router   ObjectRouter
	upgrader websocket.Upgrader
}

// NewChannelServer creates a server routing invokes through the given router.
func NewChannelServer(router ObjectRouter) *ChannelServer {
	return &ChannelServer{router: router}
}

// ServeHTTP upgrades the request to a websocket and serves the channel
// protocol on it until the peer goes away.
func (s *ChannelServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("channel: upgrade failed: %v", err)
		return
	}
	s.handleConn(conn)
}

func (s *ChannelServer) handleConn(conn *websocket.Conn) {
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		reply := s.handleMessage(data)
		if reply == nil {
			continue
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

// handleMessage routes one wire message. A nil return means no reply is owed:
// invokes are notifications, the client is not waiting.
func (s *ChannelServer) handleMessage(data []byte) *ChannelMessage {
	var msg ChannelMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return &ChannelMessage{
			Type:    TypeError,
			Code:    CodeParse,
			Message: "parse error: " + err.Error(),
		}
	}

	switch msg.Type {
	case TypeHandshake:
		return &ChannelMessage{
			Type:    TypeCatalog,
			Session: uuid.NewString(),
			Objects: s.router.Objects(),
		}

	case TypeInvoke:
		if err := s.router.Invoke(msg.Object, msg.Method); err != nil {
			return &ChannelMessage{
				Type:    TypeError,
				Code:    CodeInternal,
				Message: err.Error(),
			}
		}
		return nil

	default:
		log.Printf("channel: unknown message type: %s", msg.Type)
		return &ChannelMessage{
			Type:    TypeError,
			Code:    CodeUnknownMethod,
			Message: "unknown message type: " + msg.Type,
		}
	}
}
