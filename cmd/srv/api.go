package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/middleware"
	"github.com/ronin-planets/backend/pkg/prometheus"
	"github.com/ronin-planets/backend/pkg/router"
	"github.com/ronin-planets/backend/pkg/xcontext"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadAuth()
	s.loadLedger()
	s.loadPublisher()
	s.loadCallers()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx)
	s.server = &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(cfg.ApiServer.AllowedOrigins),
	}

	ctx, stop := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s.startPrometheus(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot shutdown server: %v", err)
		}
	}()

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.ApiServer.Port)
	var err error
	if cfg.ApiServer.Cert != "" && cfg.ApiServer.Key != "" {
		err = s.server.ListenAndServeTLS(cfg.ApiServer.Cert, cfg.ApiServer.Key)
	} else {
		err = s.server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}

func (s *srv) startPrometheus(ctx context.Context) {
	cfg := xcontext.Configs(s.ctx).PrometheusServer
	if cfg.Port == "" {
		return
	}

	collectors := []prom.Collector{}
	for _, counter := range common.PromCounters {
		collectors = append(collectors, counter)
	}
	for _, histogram := range common.PromHistograms {
		collectors = append(collectors, histogram)
	}

	server := &http.Server{
		Addr:    cfg.Address(),
		Handler: prometheus.NewHandler(collectors...),
	}

	go func() {
		xcontext.Logger(s.ctx).Infof("Starting prometheus on port: %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			xcontext.Logger(s.ctx).Errorf("Prometheus server error: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		if err := server.Close(); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot close prometheus server: %v", err)
		}
	}()
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	// Wallet login API
	loginRouter := s.router.Branch()
	loginRouter.After(middleware.HandleSaveSession())
	{
		router.POST(loginRouter, "/wallet/login", s.walletAuthDomain.Login)
	}

	verifyRouter := s.router.Branch()
	verifyRouter.After(middleware.HandleSetAccessToken())
	{
		router.POST(verifyRouter, "/wallet/verify", s.walletAuthDomain.Verify)
	}

	// These following APIs need a connected wallet.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.NewAuthVerifier().Middleware())
	{
		router.POST(authRouter, "/connect", s.userDomain.Connect)
		router.GET(authRouter, "/getUser", s.userDomain.GetUser)
		router.GET(authRouter, "/getCooldown", s.userDomain.GetCooldown)
		router.GET(authRouter, "/getClaimedRewards", s.rewardDomain.GetClaimedRewards)

		// Game API
		router.POST(authRouter, "/mine", s.gameDomain.Mine)
		router.POST(authRouter, "/learn", s.gameDomain.Learn)
		router.POST(authRouter, "/craft", s.gameDomain.Craft)

		// Claim API
		router.POST(authRouter, "/claimReward", s.rewardDomain.ClaimReward)
	}

	// These following APIs are for the admin wallet only.
	adminRouter := s.router.Branch()
	adminRouter.Before(middleware.NewAuthVerifier().Middleware())
	adminRouter.Before(middleware.NewOnlyAdmin(s.adminVerifier).Middleware())
	{
		// Reward API
		router.POST(adminRouter, "/createReward", s.rewardDomain.CreateReward)
		router.GET(adminRouter, "/getPendingClaims", s.rewardDomain.GetPendingClaims)
		router.POST(adminRouter, "/distributeReward", s.rewardDomain.DistributeReward)
		router.POST(adminRouter, "/rejectReward", s.rewardDomain.RejectReward)
		router.GET(adminRouter, "/getStatistics", s.statisticDomain.GetStatistics)
		router.Websocket(adminRouter, "/ws/events", s.eventFeedDomain.ServeEvents)

		// Account maintenance API
		router.POST(adminRouter, "/initUser", s.userDomain.InitUserData)
		router.POST(adminRouter, "/syncNFTs", s.userDomain.SyncNFTs)
		router.POST(adminRouter, "/updateUser", s.userDomain.UpdateUser)
		router.POST(adminRouter, "/updateResources", s.userDomain.UpdateResources)
		router.POST(adminRouter, "/updatePoints", s.userDomain.UpdatePoints)
		router.POST(adminRouter, "/updateKnowledge", s.userDomain.UpdateKnowledge)
		router.POST(adminRouter, "/setCooldown", s.userDomain.SetCooldown)
		router.POST(adminRouter, "/addCraftingHistory", s.userDomain.AddCraftingHistory)
	}

	// Public API
	router.GET(s.router, "/getCatalog", s.gameDomain.GetCatalog)
	router.GET(s.router, "/getRewards", s.rewardDomain.GetRewards)
	router.GET(s.router, "/getBTCPriceHistory", s.priceDomain.GetBTCPriceHistory)
}
