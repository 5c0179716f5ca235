package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"creative_prompt_service/config"
	"creative_prompt_service/generator"
	"creative_prompt_service/logger"
	"creative_prompt_service/observability"
	"creative_prompt_service/server"
	"creative_prompt_service/store"
)

func main() {
	configPath := flag.String("config", "config/config.json", "path to config.json")
	serve := flag.Bool("serve", false, "start http server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	kind := flag.String("kind", "writing", "generation kind for one-shot mode (writing|sound|chords|drawing)")
	categories := flag.String("categories", "", "comma-separated categories for one-shot mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	shutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "prompt-generator",
		Environment: os.Getenv("ENVIRONMENT"),
	})
	if shutdown != nil {
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(sctx)
		}()
	}

	st := buildStore(cfg, log)
	defer st.Close()

	backend := buildBackend(cfg, log)
	rotation := generator.NewRotation(st, log)
	sanitizer := generator.NewSanitizer(log)
	svc := generator.NewService(backend, rotation, sanitizer, log)

	if *serve {
		srv, err := server.New(svc, st, log)
		if err != nil {
			log.Fatal("server init failed", "error", err)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Info("starting http server", "addr", listen)
		if err := srv.Routes().Run(listen); err != nil {
			log.Fatal("http server exited", "error", err)
		}
		return
	}

	// One-shot mode: generate once and print JSON.
	var cats []string
	for _, c := range strings.Split(*categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	result, err := svc.Generate(ctx, generator.Request{
		Kind:       generator.Kind(*kind),
		Categories: cats,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
}

// buildStore prefers Redis; without an address (or when Redis is down) it
// falls back to the in-memory store so the service still answers, with
// rotation state scoped to the process.
func buildStore(cfg config.Config, log *logger.Logger) store.Store {
	if cfg.RedisAddr == "" {
		log.Warn("no redis address configured, using in-memory store")
		return store.NewMemory()
	}
	st, err := store.NewRedis(log, cfg.RedisAddr)
	if err != nil {
		log.Warn("redis unavailable, using in-memory store", "error", err)
		return store.NewMemory()
	}
	return st
}

// buildBackend returns nil when no API key is configured; the generation
// strategy treats that as "templates only".
func buildBackend(cfg config.Config, log *logger.Logger) generator.ModelBackend {
	if cfg.LLM == nil || cfg.LLM.APIKey == "" {
		log.Info("openai api key not found, using template-based generation")
		return nil
	}
	backend, err := generator.NewOpenAIBackend(&generator.BackendSettings{
		Model:   cfg.LLM.Model,
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
	})
	if err != nil {
		log.Warn("model backend init failed, using template-based generation", "error", err)
		return nil
	}
	return backend
}
