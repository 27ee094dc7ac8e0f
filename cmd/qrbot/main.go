package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ribassu/qrcodenextbot/internal/bot"
	"github.com/ribassu/qrcodenextbot/internal/config"
	"github.com/ribassu/qrcodenextbot/internal/handlers"
	"github.com/ribassu/qrcodenextbot/internal/logger"
	"github.com/ribassu/qrcodenextbot/internal/middleware"
	"github.com/ribassu/qrcodenextbot/internal/qrcode"
	"github.com/ribassu/qrcodenextbot/internal/telegram"
	"github.com/ribassu/qrcodenextbot/internal/tgbot"
	"github.com/ribassu/qrcodenextbot/internal/webserver"
)

func main() {
	conf, err := config.LoadConfig("")
	if err != nil {
		panic(err)
	}
	log, err := logger.NewZapLogger(conf)
	if err != nil {
		panic(err)
	}
	log.Info("Initialized logger")

	client := telegram.NewClient(conf.Telegram.APIURL, conf.Telegram.Token, log)
	generator := qrcode.NewGenerator(qrcode.DefaultSize)
	reader := qrcode.NewReader()
	responder := bot.NewResponder(generator, reader, client, conf.Page.URL, log)

	qrbot, err := tgbot.NewQRBot(conf.Telegram.Token, responder, log)
	if err != nil {
		log.Errorf("Failed to create bot: %v", err)
		panic(err)
	}
	if err := qrbot.Start(); err != nil {
		log.Errorf("Failed to start bot: %v", err)
		panic(err)
	}
	log.Info("Bot started")

	// The HTTP side of this deployment only renders QR images.
	router := handlers.NewImageRouter(log, generator)
	server := webserver.NewWebServer(conf.Server.RunAddress, router, log)

	hLogger := middleware.NewHTTPLoger(log)
	server.AddMiddleware(hLogger.HTTPLogHandler)
	log.Info("Initialized middleware functions")

	go server.RunServer()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Initialized shutdown")
	if err := qrbot.Stop(); err != nil {
		log.Errorf("Cannot stop bot %s", err)
	}
	if err := server.Shutdown(context.Background()); err != nil {
		log.Errorf("Cannot stop server %s", err)
	}

	if err := log.Close(); err != nil {
		panic(err)
	}
}
