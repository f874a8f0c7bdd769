package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"painttanks/server"
	"painttanks/utils"
	"painttanks/world"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Llongfile)

	if len(os.Args) > 1 && os.Args[1] == "server" {
		if err := server.Run(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	configFile := flag.String("config", "", "TOML config file")
	ticks := flag.Int("ticks", 60*60, "ticks to simulate")
	flag.Parse()

	cfg, err := server.LoadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := utils.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	snap, err := server.Skirmish(ctx, cfg, logger, *ticks)
	if err != nil {
		logger.Fatal("skirmish", zap.Error(err))
	}

	paint := make(map[string]int)
	for _, p := range snap.Paints {
		paint[p.Color.Hex()]++
	}
	for _, t := range snap.Tanks {
		logger.Info("survivor",
			zap.String("name", t.Name),
			zap.String("team", t.Team.Hex()),
			zap.Uint8("health", uint8(t.Health)),
		)
	}
	for _, team := range []world.Color{world.TeamBlue, world.TeamRed} {
		logger.Info("coverage", zap.String("team", team.Hex()), zap.Int("marks", paint[team.Hex()]))
	}
}
