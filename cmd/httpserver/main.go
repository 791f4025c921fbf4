package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/shravanasati/minihttp/files"
	"github.com/shravanasati/minihttp/internal/app"
	"github.com/shravanasati/minihttp/middleware"
	"github.com/shravanasati/minihttp/server"
)

var bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12")).Bold(true).Padding(0, 1)

var errUnexpectedArgs = errors.New("unexpected arguments")

type config struct {
	directory string
	colored   bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("httpserver", flag.ContinueOnError)
	fs.StringVar(&cfg.directory, "directory", "", "directory served by the /files/ routes (disabled when empty)")
	fs.BoolVar(&cfg.colored, "colored", true, "colorize request logs")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("%w: %v", errUnexpectedArgs, fs.Args())
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		// flag already reported its own parse errors
		if errors.Is(err, errUnexpectedArgs) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	var dir files.Dir
	if cfg.directory != "" {
		dir = files.NewDirFS(cfg.directory)
	}

	router := app.NewRouter()
	if cfg.colored {
		router.Use(middleware.LoggingMiddlewareColored)
	} else {
		router.Use(middleware.LoggingMiddleware)
	}

	srv, err := server.Serve(server.ServerOpts{Address: server.DefaultAddress}, router.Handler(dir))
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
	defer srv.Close()

	log.Println(bannerStyle.Render("minihttp"), "listening on", srv.Addr())
	if cfg.directory != "" {
		log.Println("serving files from", cfg.directory)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Server gracefully stopped")
}
