// Package main starts the DeskRemote server and its command-line tools.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/deskremote/internal/app"
	"github.com/frudas24/deskremote/internal/command"
	"github.com/frudas24/deskremote/internal/config"
	"github.com/frudas24/deskremote/internal/dispatch"
	"github.com/frudas24/deskremote/internal/launcher"
	"github.com/frudas24/deskremote/internal/outcome"
	"github.com/frudas24/deskremote/internal/proc"
	"github.com/frudas24/deskremote/internal/sequence"
	"github.com/frudas24/deskremote/internal/wininput"
	"github.com/spf13/cobra"
)

// services holds the wired collaborators shared by every subcommand.
type services struct {
	cfg        config.Config
	dispatcher *dispatch.Dispatcher
	outcomes   outcome.Lister
	store      *outcome.SQLiteStore
}

// newServices loads configuration and wires the dispatch stack. When detachLaunches
// is false, browser launches run inline so one-shot commands finish before exit.
func newServices(debug, detachLaunches bool) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.Debug = cfg.Debug || debug

	injector, err := wininput.NewInjector()
	if err != nil {
		if !errors.Is(err, wininput.ErrUnsupported) {
			return nil, err
		}
		log.Printf("input: %v; key presses will fail", err)
	}
	executor := sequence.NewExecutor(injector)
	executor.SetDebug(cfg.Debug)

	engine := command.NewEngine(cfg, executor, launcher.New(), proc.NewRunner())
	if !detachLaunches {
		engine.SetSpawnFunc(func(fn func()) { fn() })
	}
	registry := command.NewRegistry(cfg.SiteKeys())

	journal := outcome.NewJournal(cfg.OutcomeHistory)
	reporters := outcome.Multi{outcome.LogReporter{}, journal}
	svc := &services{cfg: cfg, outcomes: journal}
	if cfg.OutcomeDB != "" {
		store, err := outcome.OpenSQLite(cfg.OutcomeDB)
		if err != nil {
			return nil, err
		}
		svc.store = store
		svc.outcomes = store
		reporters = append(reporters, store)
	}

	svc.dispatcher = dispatch.New(registry, engine, executor, outcome.NewRecorder(reporters))
	return svc, nil
}

// Close releases persistent stores.
func (svc *services) Close() {
	if svc.store == nil {
		return
	}
	if err := svc.store.Close(); err != nil {
		log.Printf("outcome: close store: %v", err)
	}
}

// serve wires the application and blocks until shutdown.
func serve(debug bool) error {
	svc, err := newServices(debug, true)
	if err != nil {
		return err
	}
	defer svc.Close()
	if svc.cfg.Debug {
		log.Printf("debug: enabled")
	}
	logStartup(svc.cfg)

	appInstance, err := app.New(svc.cfg, svc.dispatcher, svc.outcomes)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              svc.cfg.ListenAddr,
		Handler:           appInstance.Handler(""),
		ReadHeaderTimeout: 10 * time.Second,
	}
	server.RegisterOnShutdown(appInstance.Control().Close)

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	shutdownErr := server.Shutdown(shutdownCtx)
	if err := svc.dispatcher.Wait(shutdownCtx); err != nil {
		log.Printf("shutdown: commands still running: %v", err)
	}
	return shutdownErr
}

// execOnce runs a single command synchronously and prints its outcome.
func execOnce(cmd *cobra.Command, name string, debug bool) error {
	svc, err := newServices(debug, false)
	if err != nil {
		return err
	}
	defer svc.Close()

	o, err := svc.dispatcher.Run(name)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), formatOutcome(o)); err != nil {
		return err
	}
	if !o.Success {
		return fmt.Errorf("%s failed", name)
	}
	return nil
}

// pressOnce presses a single button token.
func pressOnce(cmd *cobra.Command, button string, debug bool) error {
	svc, err := newServices(debug, false)
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.dispatcher.Press(button); err != nil {
		return fmt.Errorf("failed to press key: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "pressed %s\n", button)
	return err
}

// formatOutcome renders an outcome as a single line.
func formatOutcome(o outcome.Outcome) string {
	status := "ok"
	if !o.Success {
		status = "failed: " + o.Error
		if o.FailedStep > 0 {
			status = fmt.Sprintf("failed at step %d: %s", o.FailedStep, o.Error)
		}
	}
	line := fmt.Sprintf("%s %s %s (%s)", o.Kind, o.Target, status, o.Duration().Round(time.Millisecond))
	if o.Warning != "" {
		line += " warning: " + o.Warning
	}
	return line
}

// exitFunc is swapped in tests.
var exitFunc = os.Exit

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	exitFunc(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("DeskRemote starting")
	logEnvStatus(cfg)
	log.Printf("commands: %d sites configured", len(cfg.SiteKeys()))
	logListenStatus(cfg.ListenAddr)
	logLocalIPs()
}

// logEnvStatus reports whether a .env file was found and the API-key mode.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	if cfg.APIKeyEnabled {
		log.Printf("api key: required in %s header", cfg.APIKeyHeader)
	} else {
		log.Printf("api key: disabled")
	}
	if cfg.OutcomeDB != "" {
		log.Printf("outcome db: %s", cfg.OutcomeDB)
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	if url := localURL(addr); url != "" {
		log.Printf("local url: %s", url)
	}
}

// localURL turns a listen address into a browsable URL.
func localURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return ""
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

// logLocalIPs prints every non-loopback IPv4 so phones on the LAN can connect.
func logLocalIPs() {
	ips, err := localIPv4s()
	if err != nil {
		log.Printf("network: %v", err)
		return
	}
	if len(ips) == 0 {
		log.Printf("network: no LAN IPv4 address found")
		return
	}
	for _, ip := range ips {
		log.Printf("network: found local IPv4 %s", ip)
	}
}

// localIPv4s returns all non-loopback IPv4 addresses on interfaces that are up.
func localIPv4s() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	var ips []string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		ips = append(ips, ipv4Strings(addrs)...)
	}
	return ips, nil
}

// ipv4Strings keeps the non-loopback IPv4 entries of addrs.
func ipv4Strings(addrs []net.Addr) []string {
	var out []string
	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if ip == nil || ip.IsLoopback() {
			continue
		}
		if ip4 := ip.To4(); ip4 != nil {
			out = append(out, ip4.String())
		}
	}
	return out
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
