// Command sandserve runs a sand world headless and streams it to websocket
// clients on /ws.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"sandfall/internal/app"
	"sandfall/internal/stream"
	"sandfall/internal/tools"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	world, err := cfg.NewWorld()
	if err != nil {
		log.Fatal(err)
	}
	srv := stream.NewServer(tools.NewSession(world, cfg.TPS, cfg.Seed))
	httpServer := &http.Server{Addr: *addr, Handler: logRequests(srv.Handler())}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	g.Go(func() error {
		log.Printf("serving %dx%d world on %s", world.Size().W, world.Size().H, *addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdown)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		next.ServeHTTP(w, r)
	})
}
