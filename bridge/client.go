package bridge

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client owns one channel socket to the host and the handshake opened on it.
// All channel traffic for the life of the view goes over this single socket.
type Client struct {
	conn    *websocket.Conn
	hs      *Handshake
	writeMu sync.Mutex // gorilla permits one concurrent writer
}

// Dial connects to the host channel endpoint and sends the handshake message.
// The returned client's Handshake resolves when (and only if) the host answers
// with its catalog; a silent host leaves it pending forever.
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to host channel at %s: %w (is the host running?)", url, err)
	}

	c := &Client{conn: conn, hs: NewHandshake()}
	if err := c.write(ChannelMessage{Type: TypeHandshake}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("handshake send failed: %w", err)
	}
	go c.readLoop()
	return c, nil
}

// Handshake returns the client's single handshake.
func (c *Client) Handshake() *Handshake {
	return c.hs
}

// Close tears down the socket. A pending handshake stays pending.
func (c *Client) Close() error {
	return c.conn.Close()
}

// readLoop pumps host messages until the socket closes. It runs on its own
// goroutine; handshake continuations fire from here.
func (c *Client) readLoop() {
	for {
		var msg ChannelMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case TypeCatalog:
			c.hs.resolve(&Session{
				Catalog: Catalog{Session: msg.Session, Objects: msg.Objects},
				client:  c,
			})
		case TypeError:
			// Host-side invoke failure. Logged and dropped: notifications are
			// fire-and-forget, error handling lives in the host.
			log.Printf("bridge: host error (code %d): %s", msg.Code, msg.Message)
		default:
			log.Printf("bridge: unexpected message type from host: %s", msg.Type)
		}
	}
}

func (c *Client) write(msg ChannelMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Session is the live result of a completed handshake: the host's catalog
// plus the socket to invoke it over.
type Session struct {
	Catalog Catalog
	client  *Client
}

// Object returns a proxy for the named host object, or false when the catalog
// does not carry it.
func (s *Session) Object(name string) (*Proxy, bool) {
	if !s.Catalog.Has(name) {
		return nil, false
	}
	return &Proxy{object: name, client: s.client}, true
}

// Proxy invokes notifications on one named host object.
type Proxy struct {
	object string
	client *Client
}

// Notify sends a no-argument, fire-and-forget notification. No reply is
// awaited; the only error reported here is a failure to put the message on
// the wire.
func (p *Proxy) Notify(method string) error {
	msg := ChannelMessage{
		Type:   TypeInvoke,
		ID:     uuid.NewString(),
		Object: p.object,
		Method: method,
	}
	if err := p.client.write(msg); err != nil {
		return fmt.Errorf("notify %s.%s failed: %w", p.object, method, err)
	}
	return nil
}
