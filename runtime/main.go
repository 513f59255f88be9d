package main

import (
	"flag"
	"fmt"
	"os"

	"OccluSync/internal/config"
	"OccluSync/internal/editor"
	"OccluSync/internal/logger"
	"OccluSync/internal/scene"
	"OccluSync/internal/worldgen"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to occlusync.yaml")
	ticks := flag.Int("ticks", 3, "scene update ticks to run before the batch sync")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Log.Info("OccluSync host starting")

	sc := scene.NewScene()
	worldgen.Build(sc, cfg.Scene)

	cmds := editor.NewCommands()
	editor.RegisterOcclusionCommands(cmds, sc)

	// Let components settle the way the host loop would before a bulk edit.
	for i := 0; i < *ticks; i++ {
		sc.Update()
	}

	if err := cmds.Run(editor.CmdSyncAllOcclusionAreas); err != nil {
		logger.Log.Error("Batch sync failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Log.Info("OccluSync host finished")
}
