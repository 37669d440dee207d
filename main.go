package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jacobblock/git-lfs/internal/flag"
	"github.com/jacobblock/git-lfs/internal/logger"
	"github.com/jacobblock/git-lfs/internal/release"
)

func main() {
	config, err := flag.ParseFlags()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	log, err := logger.NewZapLogger(config.LogLevel)
	if err != nil {
		fmt.Printf("new zap logger: %v", err)
		os.Exit(1)
	}
	log.Info(config.String())

	releaser, err := release.NewReleaser(log, config)
	if err != nil {
		log.Error(fmt.Sprintf("new releaser: %v", err))
		exit(err)
	}
	if err := releaser.Release(context.Background()); err != nil {
		log.Error(fmt.Sprintf("release: %v", err))
		exit(err)
	}
}

func exit(err error) {
	var precondition release.PreconditionError
	if errors.As(err, &precondition) {
		os.Exit(2)
	}
	os.Exit(1)
}
