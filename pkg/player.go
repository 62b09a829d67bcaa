package pkg

import (
	"bufio"
	"log"
	"net"

	petname "github.com/dustinkirkland/golang-petname"
)

// Player is one leaderboard connection on the server side.
type Player struct {
	Conn net.Conn
	Out  chan MessageInterface
	Id   int
	Name string
}

func NewPlayer(conn net.Conn) *Player {
	p := &Player{
		Conn: conn,
		Out:  make(chan MessageInterface, ConnQueueSize),
		Name: petname.Generate(2, "-"),
	}
	return p
}

// HandleRead receives messages, stamps the player id, then forwards to the
// server loop.
func (p *Player) HandleRead(In chan MessageTransport) {
	scanner := bufio.NewScanner(p.Conn)
	for scanner.Scan() {
		var messageTransport MessageTransport
		Decode(scanner.Bytes(), &messageTransport)
		messageTransport.PlayerId = p.Id
		In <- messageTransport
	}
}

func (p *Player) HandleWrite() {
	for message := range p.Out {
		messageData := Encode(message)
		messageTransport := &MessageTransport{MsgType: message.Type(), Data: messageData}
		b := Encode(messageTransport)
		b = append(b, '\n')
		if _, err := p.Conn.Write(b); err != nil {
			log.Printf("Failed to write: %v Error: %v", message, err)
		}
	}
}

func (p *Player) Disconnect() {
	p.Conn.Close()
}
