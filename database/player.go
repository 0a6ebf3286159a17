package database

import (
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/shangdaren/consts"
	"github.com/ratel-online/shangdaren/model"
	"github.com/ratel-online/shangdaren/render"
)

// Player is a live connection sitting at a session. Everything sent to the
// client goes through its outbound channel so a single writer owns the socket.
type Player struct {
	sync.Mutex

	Name    string `json:"name"`
	Session string `json:"session"`

	out    chan []byte
	online bool
}

func newPlayer(name, session string, buffer int) *Player {
	return &Player{
		Name:    name,
		Session: session,
		out:     make(chan []byte, buffer),
		online:  true,
	}
}

func (p *Player) Outbound() <-chan []byte {
	return p.out
}

func (p *Player) Online() bool {
	p.Lock()
	defer p.Unlock()
	return p.online
}

// Write queues a message. A client that stopped reading loses messages rather than stalling the table.
func (p *Player) Write(bytes []byte) error {
	p.Lock()
	defer p.Unlock()
	if !p.online {
		return consts.ErrorsChanClosed
	}
	select {
	case p.out <- bytes:
	default:
		log.Infof("player %s outbound full, message dropped\n", p.Name)
	}
	return nil
}

func (p *Player) WriteResp(resp model.Resp) error {
	return p.Write(render.Resp(resp))
}

func (p *Player) WriteError(typ string, err error) error {
	return p.Write(render.Error(typ, err))
}

func (p *Player) Offline() {
	p.Lock()
	defer p.Unlock()
	if p.online {
		p.online = false
		close(p.out)
	}
}
