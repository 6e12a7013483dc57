package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"goldenflower/internal/config"
	"goldenflower/internal/util"
	"goldenflower/pkg/playable/goldenflower"
)

var players = flag.Int("players", 0, "number of players, overrides the configuration")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	opts := cfg.GameOptions()
	if *players > 0 {
		opts.Players = *players
	}

	if err := opts.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid game options")
	}

	gen := cfg.Generator()
	opts.Names = util.GetRandomNames(gen, opts.Players)

	game, err := goldenflower.NewGame(logrus.StandardLogger(), gen, opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	var p prompter = newLinePrompter(os.Stdin, os.Stdout)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		p = ptermPrompter{}
	}

	t := &table{game: game, prompt: p}
	if err := t.run(); err != nil && !errors.Is(err, io.EOF) {
		logrus.WithError(err).Fatal("game stopped")
	}

	pterm.Println("Thank you for playing...")
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if config.Instance().Log.DisableColor {
		pterm.DisableColor()
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
