package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/shnupta/scc/internal/config"
	"github.com/shnupta/scc/internal/launch"
	"github.com/shnupta/scc/internal/session"
	"github.com/shnupta/scc/internal/store"
	"github.com/shnupta/scc/internal/tui"
	"github.com/shnupta/scc/internal/watch"
)

// version is set by goreleaser via ldflags
var version = "dev"

const usage = `scc — SSH connection launcher

Usage:
  scc                   Launch the TUI
  scc list              Print all stored connections
  scc export [file]     Write connections as YAML to file (default stdout)
  scc import <file>     Add connections from a YAML file, skipping known names
  scc --help            Show this help
  scc --version         Show the version

TUI key bindings:
  type                  Search by name, hostname, group or user
  ↑ / ↓                 Select connection
  ← / →                 Filter by group
  enter                 Connect to the selected host
  ctrl+t                New connection
  ctrl+e                Edit selected connection
  ctrl+u                Duplicate selected connection
  ctrl+d                Delete selected connection
  ctrl+c                Quit

Form key bindings:
  tab / ↓               Next field
  ↑                     Previous field
  enter                 Save
  esc                   Cancel

Configuration is read from ~/.scc/config.json. Connections are stored in
<data_dir>/connections (default ~/.scc/connections).
`

func main() {
	if len(os.Args) == 2 && (os.Args[1] == "--help" || os.Args[1] == "-h" || os.Args[1] == "help") {
		fmt.Print(usage)
		return
	}

	if len(os.Args) == 2 && (os.Args[1] == "--version" || os.Args[1] == "-v" || os.Args[1] == "version") {
		fmt.Println(version)
		return
	}

	cfg := config.Load()
	if err := cfg.EnsureDataDir(); err != nil {
		fmt.Fprintln(os.Stderr, "error creating data dir:", err)
		os.Exit(1)
	}

	backend := store.NewFileBackend(cfg.ConnectionsPath(), store.Schema(cfg.Schema))
	s := store.NewStore(backend)
	if err := s.Load(); err != nil {
		// Best-effort: carry on with an empty list.
		fmt.Fprintf(os.Stderr, "warning: could not read %s: %v (changes will not be saved)\n", backend.Path(), err)
	}

	if len(os.Args) >= 2 {
		if err := runCommand(s, os.Args[1], os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "scc must be run in a terminal")
		os.Exit(1)
	}

	// Live reload is best-effort; scc works without it.
	var watcher watch.WatcherIface
	if cfg.WatchEnabled() {
		w, err := watch.New(backend.Path())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not watch %s: %v\n", backend.Path(), err)
		} else {
			watcher = w
		}
	}

	model := tui.New(session.New(s), watcher)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if watcher != nil {
		watcher.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fm, ok := final.(tui.Model)
	if !ok {
		return
	}
	if err := fm.Controller().Store().Err(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: last save failed:", err)
	}
	command, ok := fm.LaunchCommand()
	if !ok {
		return
	}

	for _, m := range launch.Missing(command) {
		fmt.Fprintf(os.Stderr, "warning: %s not found in PATH\n", m)
	}
	if err := launch.Exec(command); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// runCommand handles the non-interactive subcommands.
func runCommand(s *store.Store, name string, args []string) error {
	switch name {
	case "list":
		return runList(os.Stdout, s)
	case "export":
		if len(args) == 0 {
			return store.ExportYAML(os.Stdout, s.All())
		}
		return runExport(s, args[0])
	case "import":
		if len(args) != 1 {
			return fmt.Errorf("usage: scc import <file>")
		}
		return runImport(os.Stdout, s, args[0])
	}
	return fmt.Errorf("unknown command %q (see scc --help)", name)
}

func runList(w io.Writer, s *store.Store) error {
	for _, e := range s.Query("") {
		target := e.Hostname
		if e.User != "" {
			target = e.User + "@" + e.Hostname
		}
		if _, err := fmt.Fprintf(w, "%-24s %-32s %s\n", e.Name, target, e.Group); err != nil {
			return err
		}
	}
	return nil
}

func runExport(s *store.Store, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := store.ExportYAML(f, s.All()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runImport(w io.Writer, s *store.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	conns, err := store.ImportYAML(f)
	if err != nil {
		return err
	}
	added, skipped := s.Import(conns)
	if err := s.Err(); err != nil {
		return fmt.Errorf("save connections: %w", err)
	}
	fmt.Fprintf(w, "imported %d connections, skipped %d\n", added, skipped)
	return nil
}
