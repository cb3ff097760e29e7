package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/lbryio/base58.go/api"
)

var (
	serveListen string
	serveRate   float64
	serveBurst  int
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "Serve the encode/decode/inspect API over HTTP",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&serveListen, "listen", "localhost:5858", "address to listen on")
	serveCmd.Flags().Float64Var(&serveRate, "rate", 20, "requests per second (0 for unlimited)")
	serveCmd.Flags().IntVar(&serveBurst, "burst", 40, "request burst size")
	RootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}

	api.LogInfo = func(r *http.Request, rsp *api.Response) {
		log.Debugf("%s [%d]: %s %s", r.RemoteAddr, rsp.Status, r.Method, r.URL.Path)
	}
	api.LogError = func(r *http.Request, rsp *api.Response, err error) {
		log.Errorln(err)
	}

	server := &http.Server{
		Addr: serveListen,
		Handler: api.NewRouter(api.Config{
			Network: params,
			Rate:    rate.Limit(serveRate),
			Burst:   serveBurst,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interruptChan
		log.Println("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Errorln(err)
		}
	}()

	log.Printf("listening on %s (network %s)", serveListen, params.Name)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
