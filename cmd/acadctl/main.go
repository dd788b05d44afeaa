// Command acadctl is the interactive terminal client for the Academia
// Portal server: one TCP connection, a login handshake, then
// role-scoped dashboards for administrators, students, and faculty.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/danmuck/acadctl/internal/logging"
	"github.com/danmuck/acadctl/internal/session"
	"github.com/danmuck/acadctl/internal/transport"
)

const defaultConfigPath = "acadctl.toml"

func main() {
	var (
		configPath string
		addr       string
	)
	pflag.StringVar(&configPath, "config", defaultConfigPath, "path to client config file")
	pflag.StringVar(&addr, "addr", "", "portal server address (overrides config)")
	pflag.Parse()

	logging.ConfigureRuntime()
	log := logging.Component("acadctl")

	cfg, err := loadClientConfig(configPath)
	if err != nil {
		log.Error().Err(err).Msg("configuration failed")
		os.Exit(1)
	}
	if v := strings.TrimSpace(addr); v != "" {
		cfg.Addr = v
	}

	// Connect failure is fatal: the client targets a single always-on
	// server and has no retry policy.
	client, err := transport.Dial(cfg.Addr, cfg.transport(), logging.Component("transport"))
	if err != nil {
		log.Error().Err(err).Msg("cannot reach portal server")
		fmt.Fprintln(os.Stderr, "Connection failed: Server might be offline")
		os.Exit(1)
	}
	fmt.Println("Connected to Academia Portal Server")

	// Interrupt handling is cooperative: the watcher closes the
	// transport so any blocked exchange fails naturally, and the menu
	// loop unwinds through its normal shutdown path.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		_ = client.Close()
	}()

	sess := session.New(client, logging.Component("session"))
	app := NewApp(sess, cfg.ClearScreen, log)

	if err := app.Run(); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nExiting client application...")
			return
		}
		log.Error().Err(err).Msg("client aborted")
		os.Exit(1)
	}
	fmt.Println("Exiting client application...")
}
