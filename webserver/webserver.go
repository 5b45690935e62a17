package webserver

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"
)

const shutdownGrace = 5 * time.Second

func NewHTTPWebServer(handler http.Handler) *httpWebServer {
	return &httpWebServer{
		handler: handler,
	}
}

type httpWebServer struct {
	handler http.Handler
}

// Serve listens on port until ctx is done, then drains in-flight requests.
func (w *httpWebServer) Serve(ctx context.Context, port int) error {
	l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("server start error: %v", err)
	}
	return w.ServeListener(ctx, l)
}

func (w *httpWebServer) ServeListener(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           w.handler,
		ReadHeaderTimeout: 5 * time.Second,
		// upstream calls are bounded by the NS client timeout
		WriteTimeout: 30 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(l); err != nil && err != http.ErrServerClosed {
			log.Printf("server error: %v", err)
			errCh <- err
		}
	}()
	log.Printf("Serving on URL: http://%s/", l.Addr())
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Println("initiating graceful shutdown of server...")
		ctxShutDown, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(ctxShutDown); err != nil {
			log.Printf("error during graceful shutdown: %v", err)
		}
		return nil
	}
}
