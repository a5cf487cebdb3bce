// Command pickpath is a small interactive demo of the picking pipeline: it
// seeds an in-memory warehouse, accepts a demand bag from the terminal,
// and renders the resulting routes and pick sheets.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/waresys/pickpath/auditlog"
	"github.com/waresys/pickpath/picking"
)

func main() {
	dbPath := flag.String("db", "", "sqlite path for the audit log (default: in-memory)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	audit, err := auditlog.Open(*dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pickpath: %v\n", err)
		os.Exit(1)
	}
	defer audit.Close()

	store := seedDemoWarehouse()
	svc := picking.NewService(store, audit, logger)

	if err := runTUIProgram(newModel(svc)); err != nil {
		fmt.Fprintf(os.Stderr, "pickpath: %v\n", err)
		os.Exit(1)
	}
}

func runTUIProgram(m model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	runDone := make(chan struct{})
	defer close(runDone)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}
		p.Quit()
		select {
		case <-runDone:
		case <-time.After(5 * time.Second):
			p.Kill()
		}
	}()

	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}

	return err
}
