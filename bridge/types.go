package bridge

// Message types exchanged on the channel socket.
const (
	TypeHandshake = "handshake" // client -> host, opens the session
	TypeCatalog   = "catalog"   // host -> client, answers the handshake
	TypeInvoke    = "invoke"    // client -> host, fire-and-forget call
	TypeError     = "error"     // host -> client, routing failure report
)

// Error codes reported by the host. Parse failures and unknown message types
// get their own codes; anything the router rejects is an internal error.
const (
	CodeParse         = -32700
	CodeUnknownMethod = -32601
	CodeInternal      = -32603
)

// ChannelMessage is the wire format for every message on the channel socket.
// Fields are populated according to Type; unused fields are omitted.
type ChannelMessage struct {
	Type    string   `json:"type"`
	Session string   `json:"session,omitempty"` // catalog: session id minted by the host
	Objects []string `json:"objects,omitempty"` // catalog: names of invokable host objects
	ID      string   `json:"id,omitempty"`      // invoke: message id minted by the client
	Object  string   `json:"object,omitempty"`  // invoke: target object name
	Method  string   `json:"method,omitempty"`  // invoke: no-argument notification name
	Code    int      `json:"code,omitempty"`    // error: routing failure code
	Message string   `json:"message,omitempty"` // error: human-readable description
}

// Catalog is the set of named host objects a completed handshake exposes.
type Catalog struct {
	Session string
	Objects []string
}

// Has reports whether the catalog carries an object with the given name.
func (c Catalog) Has(name string) bool {
	for _, o := range c.Objects {
		if o == name {
			return true
		}
	}
	return false
}

// ObjectRouter handles invokes on the host side. Implemented by the host app.
type ObjectRouter interface {
	// Invoke dispatches a no-argument notification on a named object.
	// Returning an error produces an error message back to the client.
	Invoke(object, method string) error

	// Objects lists the object names advertised in the handshake catalog.
	Objects() []string
}
