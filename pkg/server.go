package pkg

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	BoardIdleTimeout  = 30 * time.Minute
	SweepInterval     = time.Minute
	SshPort           = ":2222"
	ServerPort        = ":1998"
	ConnQueueSize     = 10
	BoardSize         = 10

	DefaultHostKeyFile = "./diceterm_host_key"
)

// Server answers on two doors: an SSH server that drops visitors straight
// into the game on a pty, and a TCP listener speaking the leaderboard
// protocol for clients that run locally.
type Server struct {
	*ssh.Server
	Board *Leaderboard
	In    chan MessageTransport

	mu      sync.Mutex
	players map[int]*Player
	nextId  int
}

func setWinsize(f *os.File, w, h int) {
	syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), uintptr(syscall.TIOCSWINSZ),
		uintptr(unsafe.Pointer(&struct{ h, w, x, y uint16 }{uint16(h), uint16(w), 0, 0})))
}

func sshHandle(clientPath string) ssh.Handler {
	return func(s ssh.Session) {
		ptyReq, winCh, isPty := s.Pty()
		if !isPty {
			io.WriteString(s, "non-interactive terminals are not supported\n")
			s.Exit(1)
			return
		}

		cmdCtx, cancelCmd := context.WithCancel(s.Context())
		defer cancelCmd()

		cmd := exec.CommandContext(cmdCtx, clientPath)
		cmd.Env = append(s.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

		f, err := pty.Start(cmd)
		if err != nil {
			io.WriteString(s, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
			s.Exit(1)
			return
		}
		defer f.Close()

		go func() {
			for win := range winCh {
				setWinsize(f, win.Width, win.Height)
			}
		}()

		go func() {
			io.Copy(f, s)
		}()
		io.Copy(s, f)

		f.Close()
		cmd.Wait()
	}
}

// hostKeySigner loads the ed25519 host key seed from path, generating and
// writing one on first start. Visitors see the same host key across
// restarts.
func hostKeySigner(path string) (gossh.Signer, error) {
	seed, err := ioutil.ReadFile(path)
	if err == nil && len(seed) == ed25519.SeedSize {
		return gossh.NewSignerFromKey(ed25519.NewKeyFromSeed(seed))
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	if err := ioutil.WriteFile(path, priv.Seed(), 0600); err != nil {
		return nil, err
	}
	return gossh.NewSignerFromKey(priv)
}

// NewServer starts the SSH front door and returns the leaderboard server.
// clientPath is the game binary spawned for SSH visitors. hostKeyFile may
// be empty, in which case a key is kept at DefaultHostKeyFile.
func NewServer(sshAddr, clientPath, hostKeyFile string) (*Server, error) {
	s := &ssh.Server{
		Addr:        sshAddr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     sshHandle(clientPath),
	}

	if hostKeyFile != "" {
		if err := s.SetOption(ssh.HostKeyFile(hostKeyFile)); err != nil {
			return nil, err
		}
	} else {
		signer, err := hostKeySigner(DefaultHostKeyFile)
		if err != nil {
			return nil, err
		}
		s.AddHostKey(signer)
	}

	go func() {
		if err := s.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Printf("ssh server stopped: %v", err)
		}
	}()

	server := &Server{
		Server:  s,
		Board:   NewLeaderboard(),
		In:      make(chan MessageTransport, ConnQueueSize),
		players: make(map[int]*Player),
	}
	return server, nil
}

// HandleConn registers a leaderboard connection and greets it with its
// assigned name and the current standings.
func (s *Server) HandleConn(conn net.Conn) {
	p := NewPlayer(conn)

	s.mu.Lock()
	s.nextId++
	p.Id = s.nextId
	s.players[p.Id] = p
	s.mu.Unlock()

	go p.HandleWrite()
	p.Out <- MessageConnect{Name: p.Name, Board: s.Board.Top(BoardSize)}

	go func() {
		p.HandleRead(s.In)
		s.RemovePlayer(p.Id)
	}()
	log.Printf("Player %s (id %d) connected", p.Name, p.Id)
}

func (s *Server) RemovePlayer(id int) {
	s.mu.Lock()
	p, ok := s.players[id]
	if ok {
		delete(s.players, id)
	}
	s.mu.Unlock()
	if ok {
		close(p.Out)
		p.Disconnect()
		log.Printf("Player %s (id %d) disconnected", p.Name, p.Id)
	}
}

func (s *Server) player(id int) (*Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	return p, ok
}

// Run dispatches messages from all connections. Blocks.
func (s *Server) Run() {
	for messageTransport := range s.In {
		switch messageTransport.MsgType {
		case TypeMessageScore:
			var message MessageScore
			Decode(messageTransport.Data, &message)
			p, ok := s.player(messageTransport.PlayerId)
			if !ok {
				continue
			}
			if s.Board.Report(p.Name, message.Score) {
				s.Broadcast(MessageLeaderboard{Board: s.Board.Top(BoardSize)})
			}
		default:
			log.Printf("Received unknown message type %s", messageTransport.MsgType)
		}
	}
}

// Broadcast queues a message for every connected player, skipping anyone
// whose queue is full rather than blocking the dispatch loop.
func (s *Server) Broadcast(m MessageInterface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		select {
		case p.Out <- m:
		default:
		}
	}
}

// CleanIdleBoard periodically drops standings of players gone for longer
// than BoardIdleTimeout.
func (s *Server) CleanIdleBoard() {
	tick := time.NewTicker(SweepInterval)
	for range tick.C {
		if n := s.Board.Sweep(BoardIdleTimeout); n > 0 {
			log.Printf("Swept %d idle entries", n)
		}
	}
}
