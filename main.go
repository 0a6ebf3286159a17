package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/shangdaren/config"
	"github.com/ratel-online/shangdaren/database"
	mconsts "github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/network"
	"github.com/ratel-online/shangdaren/service"
)

var configPath = flag.String("c", "", "config file (yaml)")

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error(err)
		return
	}

	strategy, ok := mconsts.ParseStrategy(cfg.Game.RobotStrategy)
	if !ok {
		log.Errorf("unknown robot strategy %q\n", cfg.Game.RobotStrategy)
		return
	}
	service.SetDefaultStrategy(strategy)

	if cfg.Redis.Addr != "" {
		store, err := database.NewRedisStore(context.Background(), cfg.Redis)
		if err != nil {
			log.Error(err)
			return
		}
		defer store.Close()
		database.SetStore(store)
		log.Infof("game records kept in redis %s\n", cfg.Redis.Addr)
	}

	if cfg.NATS.URL != "" {
		mirror, err := network.NewMirror(cfg.NATS)
		if err != nil {
			log.Error(err)
			return
		}
		defer mirror.Close()
		service.AddObserver(mirror)
		log.Infof("mirroring events to nats %s\n", cfg.NATS.URL)
	}

	server := network.NewWebsocketServer(cfg.Server)
	log.Error(server.Serve())
}
