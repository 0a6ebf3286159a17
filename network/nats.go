package network

import (
	"github.com/nats-io/nats.go"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/shangdaren/config"
	"github.com/ratel-online/shangdaren/mahjong/event"
	"github.com/ratel-online/shangdaren/render"
)

type publisher interface {
	Publish(subject string, data []byte) error
}

// Mirror republishes the public events of every session on NATS, one
// subject per session. Private payloads (dealt hands, draws) never leave.
type Mirror struct {
	pub     publisher
	subject string
	conn    *nats.Conn
}

func NewMirror(cfg config.NATSConfig) (*Mirror, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Name("shangdaren"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Errorf("nats disconnected: %v\n", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infof("nats reconnected to %s\n", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, err
	}
	m := newMirror(conn, cfg.Subject)
	m.conn = conn
	return m, nil
}

func newMirror(pub publisher, subject string) *Mirror {
	return &Mirror{pub: pub, subject: subject}
}

func (m *Mirror) Listener(sessionID string) event.Listener {
	subject := m.subject + "." + sessionID
	return event.ListenerFunc(func(payload event.Payload) {
		if payload.Private {
			return
		}
		if err := m.pub.Publish(subject, render.Event(payload)); err != nil {
			log.Errorf("nats publish %s: %v\n", subject, err)
		}
	})
}

func (m *Mirror) Close() {
	if m.conn != nil {
		m.conn.Close()
	}
}
