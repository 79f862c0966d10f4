package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/studydash/internal/devapi"
	"github.com/dmitrijs2005/studydash/internal/logging"
)

func main() {

	cfg, err := devapi.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	var id devapi.Identity
	flag.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to listen on")
	flag.StringVar(&cfg.Secret, "secret", cfg.Secret, "HS256 signing secret")
	flag.DurationVar(&cfg.TokenTTL, "ttl", cfg.TokenTTL, "lifetime of minted tokens")
	flag.StringVar(&id.UID, "mint", "", "print a token for this uid and exit")
	flag.StringVar(&id.Name, "name", "", "name claim of the minted token")
	flag.StringVar(&id.Email, "email", "", "email claim of the minted token")
	flag.Parse()

	if id.UID != "" {
		tok, err := devapi.Mint([]byte(cfg.Secret), id, cfg.TokenTTL)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(tok)
		return
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, "json")
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	router := devapi.NewRouter(devapi.NewVerifier([]byte(cfg.Secret)), devapi.Sample(), logger)
	if err := devapi.NewServer(cfg.Addr, router, logger).Run(ctx); err != nil {
		logger.Error(ctx, err.Error())
		os.Exit(1)
	}

}
