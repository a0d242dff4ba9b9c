package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"riftboard/internal/api"
	"riftboard/internal/board"
	"riftboard/internal/config"
	"riftboard/internal/discord"
	"riftboard/internal/rank"
	"riftboard/internal/render"
	"riftboard/internal/riot"
	"riftboard/internal/security"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("💡 No .env file found, using environment variables only")
	} else {
		log.Println("✅ Loaded environment from .env")
	}

	log.Println("🏆 ================================")
	log.Println("🏆  RIFTBOARD - RANKED LEADERBOARDS")
	log.Println("🏆  LoL Solo Queue + TFT")
	log.Println("🏆 ================================")

	cfg := config.Load()

	if cfg.Discord.Token == "" {
		log.Fatal("❌ DISCORD_TOKEN not set")
	}
	apiKeys := map[string]string{
		"lol": cfg.Riot.LoLAPIKey,
		"tft": cfg.Riot.TFTAPIKey,
	}

	renderer, err := render.NewRenderer(cfg.Assets.FontPath, cfg.Assets.IconDir)
	if err != nil {
		log.Fatalf("❌ Renderer init failed: %v", err)
	}

	session, err := discord.New(cfg.Discord.Token)
	if err != nil {
		log.Fatalf("❌ Discord session failed: %v", err)
	}
	if err := session.Open(); err != nil {
		log.Fatalf("❌ Discord gateway failed: %v", err)
	}
	defer session.Close()

	store := rank.NewStore()
	announcer := board.NewAnnouncer(session, cfg.Discord.AnnouncementChannelID, config.Mention, config.Emoji)

	// Moderation-burst watcher, alerting into the same channel as the
	// overtake announcements.
	selfID := session.Raw().State.User.ID
	watcher := security.NewWatcher(cfg.Security, session.Raw(), selfID, func(content string) {
		if _, err := session.SendText(cfg.Discord.AnnouncementChannelID, content); err != nil {
			log.Printf("⚠️ Failed to send security alert: %v", err)
		}
	})
	watcher.Attach(session.Raw())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	roster := config.SummonerNames()
	var (
		fetchers []*board.Fetcher
		cycles   []*board.Cycle
		modes    []string
	)
	for _, mode := range cfg.Modes {
		key := apiKeys[mode.Game]
		if key == "" {
			log.Printf("⚠️ [%s] API key not set, mode disabled", mode.Name)
			continue
		}
		modes = append(modes, mode.Game)

		client := riot.NewClient(riot.Config{
			APIKey: key,
			Region: cfg.Riot.Region,
			Game:   riot.Game(mode.Game),
		})

		game := mode.Game
		fetchers = append(fetchers, board.NewFetcher(board.FetcherConfig{
			Mode:      mode.Game,
			QueueType: mode.QueueType,
			Interval:  cfg.Timings.FetchInterval,
			Resolve:   func(name string) string { return config.PUUIDForGame(game, name) },
		}, client, store, rank.NewBatcher(roster, cfg.Timings.BatchSize)))

		cycles = append(cycles, board.NewCycle(board.CycleConfig{
			Mode:           mode.Game,
			ChannelID:      mode.ChannelID,
			BackgroundPath: mode.BackgroundPath,
			Interval:       cfg.Timings.DisplayInterval,
			TopK:           cfg.Timings.TopK,
		}, session, renderer, store, announcer))

		// Clear stale posts from a previous run before posting fresh ones.
		if err := session.CleanupChannel(mode.ChannelID, cfg.Discord.CleanupHistoryLimit); err != nil {
			log.Printf("⚠️ [%s] Channel cleanup failed: %v", mode.Name, err)
		}
	}
	if len(modes) == 0 {
		log.Fatal("❌ No game mode enabled, set LOL_API_KEY and/or TFT_API_KEY")
	}

	// Debug server (pprof + metrics), localhost only.
	if os.Getenv("DISABLE_DEBUG_SERVER") != "true" {
		if err := api.StartDebugServer(api.DefaultObservabilityConfig()); err != nil {
			log.Printf("⚠️ Debug server disabled: %v", err)
		}
	}

	// Read-only ops API with the live standings feed.
	var server *api.Server
	if cfg.Server.Enabled {
		server = api.NewServer(api.ServerConfig{Store: store, Modes: modes})
		go func() {
			addr := ":" + strconv.Itoa(cfg.Server.Port)
			if err := server.Start(addr); err != nil {
				log.Printf("⚠️ API server stopped: %v", err)
			}
		}()
	}

	// Fill every board before the first display cycle so the opening
	// image is complete rather than trickling in batch by batch.
	log.Printf("⏳ Initial fetch for %d players across %d modes...", len(roster), len(fetchers))
	g, gctx := errgroup.WithContext(ctx)
	for _, f := range fetchers {
		f := f
		g.Go(func() error {
			f.FetchAll(gctx)
			return nil
		})
	}
	_ = g.Wait()

	for _, f := range fetchers {
		go f.Run(ctx)
	}
	for _, c := range cycles {
		go c.Run(ctx)
	}

	log.Println("✅ Riftboard running. Press Ctrl+C to stop.")
	fmt.Println()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down...")
	cancel()
	if server != nil {
		server.Stop()
	}
	log.Println("👋 Goodbye!")
}
