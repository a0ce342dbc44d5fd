// Command chesscore is a UCI engine: it reads commands on stdin and
// writes protocol responses on stdout.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	logging "github.com/op/go-logging"

	"github.com/SimjanovskiNikola/chesscore/config"
	"github.com/SimjanovskiNikola/chesscore/diag"
	"github.com/SimjanovskiNikola/chesscore/uci"
)

var log = logging.MustGetLogger("chesscore")

var (
	configPath = flag.String("config", "", "path to a TOML config file")
	diagAddr   = flag.String("diag-addr", "", "if set, serve /healthz and /stats on this address")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Fall back to defaults rather than refusing to start over a bad
		// or missing config file.
		cfg = config.Default()
	}
	setupLogging(cfg)

	driver := uci.NewDriver(os.Stdout)

	if *diagAddr != "" {
		server := diag.NewServer(driver)
		go func() {
			if err := http.ListenAndServe(*diagAddr, server); err != nil {
				log.Errorf("diagnostics server stopped: %v", err)
			}
		}()
	}

	if err := driver.Run(context.Background(), os.Stdin); err != nil {
		log.Fatalf("uci loop terminated: %v", err)
	}
}

func setupLogging(cfg config.Config) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	))
	level, err := logging.LogLevel(cfg.LogLevel)
	if err != nil {
		level = logging.INFO
	}
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}
