package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	"github.com/lintang-b-s/behaviorplanner/pkg/logger"
	"github.com/lintang-b-s/behaviorplanner/pkg/planner"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	scenarioPath = flag.String("scenario", "./data/scenario_highway.json", "recorded scenario file")
	profile      = flag.String("profile", "", "tuning profile, overrides the scenario's profile")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		// the built-in profiles are enough to replay
		fmt.Fprintln(os.Stderr, err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	sc, err := ReadScenarioFile(*scenarioPath)
	if err != nil {
		logger.Fatal("failed to read scenario", zap.String("path", *scenarioPath), zap.Error(err))
	}

	profileName := config.PROFILE_HIGHWAY
	if sc.Profile != "" {
		profileName = sc.Profile
	}
	if *profile != "" {
		profileName = *profile
	}
	cfg, err := config.Load(viper.GetViper(), profileName)
	if err != nil {
		logger.Fatal("invalid planner configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	var summary []CycleSummary
	g.Go(func() error {
		var err error
		summary, err = Replay(gctx, planner.NewPlanner(cfg, logger), sc, logger)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Fatal("replay failed", zap.Error(err))
	}

	changes := 0
	for _, s := range summary {
		if s.Feasible && s.LaneChange {
			changes++
		}
	}
	logger.Info("replay done", zap.String("profile", profileName), zap.Int("cycles", len(summary)),
		zap.Int("lane_change_decisions", changes))
}
