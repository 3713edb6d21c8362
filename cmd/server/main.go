package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"baccarat-server/internal/config"
	"baccarat-server/internal/mux"
	"baccarat-server/pkg/baccarat"
	"baccarat-server/pkg/room"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	// fail fast
	if config.Instance().AdminPassword == "" {
		logrus.Fatal("missing admin password in configuration")
	}

	table := room.NewTable(logrus.WithField("component", "table"), tableOptions())
	table.Start(context.Background())

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "X-Admin-Password"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, table))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func tableOptions() room.Options {
	cfg := config.Instance()

	return room.Options{
		Countdown:       cfg.Game.CountdownSeconds,
		TickInterval:    time.Second,
		DealDelay:       time.Duration(cfg.Game.DealDelaySeconds) * time.Second,
		SettleDelay:     time.Duration(cfg.Game.SettlePauseSeconds) * time.Second,
		StartingBalance: cfg.Game.StartingBalance,
		HistorySize:     cfg.Game.HistorySize,
		Payouts: baccarat.Payouts{
			Player:     cfg.Payouts.Player,
			Banker:     cfg.Payouts.Banker,
			Tie:        cfg.Payouts.Tie,
			PlayerPair: cfg.Payouts.PlayerPair,
			BankerPair: cfg.Payouts.BankerPair,
		},
	}
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
