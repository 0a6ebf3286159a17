package network

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/shangdaren/config"
)

type Websocket struct {
	addr   string
	path   string
	buffer int
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(cfg config.ServerConfig) Websocket {
	return Websocket{addr: cfg.Addr, path: cfg.Path, buffer: cfg.OutboundBuffer}
}

func (w Websocket) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc(w.path, w.serveWs)
	log.Infof("Websocket server listening on %s%s\n", w.addr, w.path)
	return http.ListenAndServe(w.addr, mux)
}

// serveWs ?session= resumes a table, omitted opens a new one. ?name= is the seat name.
func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	query := r.URL.Query()
	if err := handle(conn, query.Get("session"), query.Get("name"), w.buffer); err != nil {
		log.Error(err)
	}
}
