package webserver

import (
	"context"
	"net/http"

	"github.com/ribassu/qrcodenextbot/internal/logger"
)

type middlewareFunc func(next http.Handler) http.Handler

// WebServer wraps http.Server with a middleware chain and graceful
// shutdown.
type WebServer struct {
	Log        logger.Logger
	middlwares []middlewareFunc
	mux        http.Handler
	address    string
	server     *http.Server
}

func NewWebServer(address string, mux http.Handler, log logger.Logger) *WebServer {
	return &WebServer{
		address: address,
		mux:     mux,
		Log:     log,
	}
}

func (ws *WebServer) AddMiddleware(funcs ...middlewareFunc) {
	ws.middlwares = append(ws.middlwares, funcs...)
}

func (ws *WebServer) RunServer() {
	handler := ws.mux

	for _, f := range ws.middlwares {
		handler = f(handler)
	}

	ws.server = &http.Server{
		Addr:    ws.address,
		Handler: handler,
	}
	ws.Log.Infof("Starting server on %s", ws.address)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.Log.Errorf("starting server on %s error: %s", ws.address, err)
	}
}

func (ws *WebServer) Shutdown(ctx context.Context) error {
	return ws.server.Shutdown(ctx)
}
