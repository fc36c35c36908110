package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eights/config"
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/render"
	"github.com/ratel-online/eights/service"
	"github.com/ratel-online/eights/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	if cfg.NoColor {
		suit.DisableColor()
	}

	service.StartSweeper(cfg.SweepInterval, cfg.IdleTimeout)
	table := service.CreateTable(service.TableOptions{
		PlayerName:    cfg.PlayerName,
		Catalog:       card.DefaultCatalog(),
		ComputerDelay: cfg.ComputerDelay,
		Rand:          rand.New(rand.NewSource(cfg.SeedOrNow())),
	})
	defer service.DeleteTable(table.ID)

	if cfg.Output == config.OutputJSON {
		table.Subscribe(ui.NewJSONWriter(os.Stdout))
	} else {
		terminal := ui.NewTerminal(suit.Stdout, cfg.PlayerName)
		table.Subscribe(terminal)
		terminal.OnStateChanged(table.Snapshot())
		ui.Println(suit.Stdout, render.Help())
	}

	if err := ui.Run(table, os.Stdin, suit.Stdout); err != nil {
		log.Error(err)
	}
}
