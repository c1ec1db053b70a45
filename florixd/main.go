package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmisol/florix"
)

func main() {
	conf := flag.String("conf", "", "site yaml (optional, env overrides apply)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := florix.NewSite(ctx, *conf)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	if s.Mail.Key == "" {
		s.Println("mail key is not set, contact form will answer 500")
	}
	if err = s.ListenAndServe(); err != nil {
		log.Println("serve", err)
	}
}
