package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/thanhnp/txsigner/internal/api"
	"github.com/thanhnp/txsigner/internal/batch"
	"github.com/thanhnp/txsigner/internal/config"
	"github.com/thanhnp/txsigner/internal/gateway"
	"github.com/thanhnp/txsigner/internal/models"
	"github.com/thanhnp/txsigner/internal/signer"
)

// options is the command line surface of the tool.
type options struct {
	Config    string `short:"C" long:"config" description:"Path to YAML configuration file"`
	Container string `long:"bitcoind-container" env:"BITCOIND_CONTAINER" description:"Docker container ID running bitcoind with the wallet (uses local bitcoin-cli if not provided)"`
	Serve     bool   `long:"serve" description:"Run the HTTP signing service instead of signing one batch"`
	Listen    string `long:"listen" description:"Listen address for --serve (overrides config)"`
	Debug     bool   `long:"debug" description:"Enable debug logging"`

	Args struct {
		InputFile string `positional-arg-name:"input-file" description:"Input JSON file containing transactions (reads from stdin if not provided)"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] [input-file]"
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	setupLoggers(opts.Debug)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		mainLog.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if opts.Container != "" {
		cfg.Signer.Container = opts.Container
	}

	// Decode and prevout queries always go through the local CLI; wallet
	// signing is the only call proxied into the container when one is
	// configured.
	node := gateway.NewExec(cfg.Signer.CLIPath)
	var wallet gateway.Gateway = node
	if cfg.Signer.Container != "" {
		mainLog.Infof("Signing with wallet in container %s", cfg.Signer.Container)
		wallet = gateway.NewDocker(cfg.Signer.DockerPath, cfg.Signer.Container,
			cfg.Signer.CLIPath)
	}

	if err := gateway.CheckVersion(node); err != nil {
		mainLog.Errorf("%v", err)
		os.Exit(1)
	}

	pipeline := signer.NewPipeline(node, wallet)

	if opts.Serve {
		addr := cfg.Addr()
		if opts.Listen != "" {
			addr = opts.Listen
		}
		if err := serve(pipeline, addr); err != nil {
			mainLog.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}

	if err := signBatch(pipeline, opts.Args.InputFile); err != nil {
		mainLog.Errorf("%v", err)
		os.Exit(1)
	}
}

// signBatch runs one batch: read the input array, sign every transaction in
// order, write the output array to stdout. Any fatal error leaves stdout
// untouched.
func signBatch(pipeline *signer.Pipeline, inputFile string) error {
	var (
		entries []models.TxEntry
		err     error
	)
	if inputFile != "" {
		mainLog.Infof("Reading transactions from: %s", inputFile)
		entries, err = batch.ReadFile(inputFile)
	} else {
		mainLog.Infof("Reading transactions from: stdin")
		entries, err = batch.Read(os.Stdin)
	}
	if err != nil {
		return err
	}
	mainLog.Infof("Found %d transaction(s) to process", len(entries))

	signed, err := pipeline.SignBatch(entries)
	if err != nil {
		return err
	}

	mainLog.Infof("All transactions processed")
	return batch.Write(os.Stdout, signed)
}

// serve runs the HTTP signing service until interrupted.
func serve(pipeline *signer.Pipeline, addr string) error {
	router := api.NewRouter(pipeline)

	server := &http.Server{
		Addr:         addr,
		Handler:      router.Engine(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		mainLog.Infof("HTTP signing service listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	mainLog.Infof("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	mainLog.Infof("Server stopped")
	return nil
}
