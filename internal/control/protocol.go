// Package control serves the websocket control channel.
package control

const (
	// MsgPress presses a button token.
	MsgPress = "press"
	// MsgExec dispatches a command.
	MsgExec = "exec"
	// MsgResult is the server reply to press and exec messages.
	MsgResult = "result"
)

// Message is a control websocket payload sent by the client.
type Message struct {
	T       string `json:"t"`
	Seq     int    `json:"seq,omitempty"`
	Button  string `json:"button,omitempty"`
	Command string `json:"command,omitempty"`
}

// Reply answers a single control message.
type Reply struct {
	T      string `json:"t"`
	Seq    int    `json:"seq,omitempty"`
	OK     bool   `json:"ok"`
	ID     string `json:"id,omitempty"`
	Detail string `json:"detail,omitempty"`
}
