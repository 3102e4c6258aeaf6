package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	"github.com/lintang-b-s/behaviorplanner/pkg/http"
	"github.com/lintang-b-s/behaviorplanner/pkg/http/usecases"
	"github.com/lintang-b-s/behaviorplanner/pkg/logger"
	"github.com/lintang-b-s/behaviorplanner/pkg/planner"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	profile      = flag.String("profile", "", "tuning profile (highway, conservative), overrides PROFILE of the config file")
	useRateLimit = flag.Bool("rate_limit", false, "enable the global request rate limit")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	viper.SetDefault("PROFILE", config.PROFILE_HIGHWAY)
	profileName := viper.GetString("PROFILE")
	if *profile != "" {
		profileName = *profile
	}
	cfg, err := config.Load(viper.GetViper(), profileName)
	if err != nil {
		logger.Fatal("invalid planner configuration", zap.Error(err))
	}
	logger.Info("loaded tuning profile", zap.String("profile", profileName), zap.Any("config", cfg))

	behaviorPlanner := planner.NewPlanner(cfg, logger)
	plannerService := usecases.NewPlannerService(logger, behaviorPlanner)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, *useRateLimit, plannerService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()
	logger.Info("Behavior Planner Server Stopped", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped with error", zap.Error(err))
	}
	_ = logger.Sync()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
