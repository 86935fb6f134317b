package main

import (
	"fmt"
	"log"
	"os"

	"github.com/avstrong/vacaystar/internal/app"
	"github.com/avstrong/vacaystar/internal/config"
	"github.com/avstrong/vacaystar/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	conf := config.Load()

	out := os.Stderr

	if conf.LogPath != "" {
		f, err := os.OpenFile(conf.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gomnd
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", conf.LogPath, err)

			return 1
		}
		defer f.Close()

		out = f
	}

	l := logger.New(log.New(out, "", log.LstdFlags))

	if err := app.Run(l, conf); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())
		fmt.Fprintf(os.Stderr, "Failed to run app: %v\n", err)

		return 1
	}

	return 0
}
