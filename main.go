// Copyright
// SPDX-License-Identifier: MIT
// tabgroups: primary/secondary editor tab groups driven by a pure reducer, with a terminal shell and a replay tool
package main

import (
    "encoding/json"
    "errors"
    "flag"
    "fmt"
    "io"
    "os"
    "path/filepath"

    cfg "tabgroups/internal/config"
    "tabgroups/internal/logsink"
    appTUI "tabgroups/internal/tui"
    "tabgroups/internal/tui/state"
    diffw "tabgroups/internal/tui/widgets/diff"
)

const Version = "0.1.0"

const logBuffer = 256

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "--version":
        fmt.Println("tabgroups", Version)
        return
    case "init":
        cmdInit()
    case "tui":
        if err := cmdTUI(os.Args[2:]); err != nil {
            fatalf("%v", err)
        }
    case "replay":
        if err := cmdReplay(os.Args[2:]); err != nil {
            fatalf("%v", err)
        }
    default:
        usage()
    }
}

func usage() {
    fmt.Print(`tabgroups ` + Version + `
Primary/secondary editor tab groups driven by a pure state reducer.
USAGE
  tabgroups <command> [options]
COMMANDS
  init         Write default settings and an empty workspace file
  tui          Open the interactive tab shell
  replay       Run a JSON-lines action script and print the final state
  help         Show help (try: tabgroups help replay)
  version      Print version
NOTES
  • Settings come from $XDG_CONFIG_HOME/tabgroups/config.toml (or $TABGROUPS_CONFIG)
    and TABGROUPS_* environment variables; flags override both.
  • Use -v to echo dispatched actions to stderr and --log-file to append them to a file.

`)
}

func helpTopic(name string) {
    switch name {
    case "tui":
        fmt.Print(`USAGE
  tabgroups tui [--workspace PATH] [--no-color] [--history N] [--log-file PATH]
DESCRIPTION
  Opens the documents listed in the workspace file and starts the shell.
  Press ? inside the shell for key bindings; W saves the layout back to the workspace file.
OPTIONS
  --workspace PATH   Workspace JSON to load and save (default from settings)
  --no-color         Disable colors (NO_COLOR is honoured too)
  --history N        Undo depth (default 50)
  --log-file PATH    Append the action log to file (created if missing)

`)
    case "replay":
        fmt.Print(`USAGE
  tabgroups replay [--workspace PATH] [--trace] [--save PATH] [-v] [--log-file PATH] SCRIPT|-
DESCRIPTION
  Reads one action per line, e.g.
    {"type":"OPEN","payload":{"documentId":"a","fileName":"a.bot"}}
    {"type":"SPLIT_TAB","payload":{"srcEditorKey":"primary","destEditorKey":"secondary","documentId":"a"}}
  Blank lines and lines starting with # are skipped. Each action is reduced in order
  and the final state is printed as JSON. An action naming an unknown group stops the run.
OPTIONS
  --workspace PATH   Start from this workspace instead of the empty state
  --trace            Print a state diff after every action
  --save PATH        Also write the final layout as a workspace file
  -v                 Echo dispatched actions to stderr
  --log-file PATH    Append dispatched actions to file

`)
    default:
        usage()
    }
}

func fatalf(format string, args ...any) {
    fmt.Fprintf(os.Stderr, "tabgroups: "+format+"\n", args...)
    os.Exit(1)
}

func loadSettings() cfg.Settings {
    s, err := cfg.LoadSettings()
    if err != nil {
        fatalf("%v", err)
    }
    return s
}

/* ---------- commands ---------- */

func cmdInit() {
    settings := loadSettings()
    path := cfg.SettingsPath()
    if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
        if err := cfg.SaveSettings(path, settings); err != nil {
            fatalf("%v", err)
        }
        fmt.Println("Wrote", path)
    } else {
        fmt.Println(path, "already exists; not overwriting")
    }
    if _, err := os.Stat(settings.Workspace); errors.Is(err, os.ErrNotExist) {
        if err := cfg.Save(settings.Workspace, cfg.FromState(state.InitialState())); err != nil {
            fatalf("write workspace: %v", err)
        }
        fmt.Println("Wrote", settings.Workspace)
    } else {
        fmt.Println(settings.Workspace, "already exists; not overwriting")
    }
}

// cmdTUI and cmdReplay return their errors so the deferred sink close runs
// before main exits.
func cmdTUI(args []string) error {
    settings := loadSettings()
    fs := flag.NewFlagSet("tui", flag.ExitOnError)
    fs.Usage = func() { helpTopic("tui") }
    workspace := fs.String("workspace", settings.Workspace, "Workspace JSON to load and save")
    noColor := fs.Bool("no-color", settings.NoColor, "Disable colors")
    history := fs.Int("history", settings.History, "Undo depth")
    logPath := fs.String("log-file", settings.LogFile, "Append the action log to file (created if missing)")
    _ = fs.Parse(args)

    // stderr belongs to the shell; the action log goes to the panel and file
    sink, err := logsink.New(logsink.Options{File: *logPath, Buffer: logBuffer, Name: "tabgroups " + Version})
    if err != nil {
        return err
    }
    defer sink.Close()

    store := state.NewStore(state.InitialState(), sink.Logf)
    store.SetHistoryLimit(*history)
    if err := restore(store, *workspace, true); err != nil {
        return err
    }

    return appTUI.Run(appTUI.Options{
        Store:     store,
        Workspace: *workspace,
        NoColor:   *noColor,
        LogCh:     sink.Lines(),
        LogDir:    filepath.Join(cfg.Dir(), "logs"),
        Dropped:   sink.Dropped,
    })
}

func cmdReplay(args []string) error {
    settings := loadSettings()
    fs := flag.NewFlagSet("replay", flag.ExitOnError)
    fs.Usage = func() { helpTopic("replay") }
    workspace := fs.String("workspace", "", "Start from this workspace")
    trace := fs.Bool("trace", false, "Print a state diff after every action")
    save := fs.String("save", "", "Also write the final layout as a workspace file")
    verbose := fs.Bool("v", settings.Verbose, "Echo dispatched actions to stderr")
    logPath := fs.String("log-file", settings.LogFile, "Append dispatched actions to file")
    _ = fs.Parse(args)
    if fs.NArg() != 1 {
        helpTopic("replay")
        os.Exit(2)
    }

    sink, err := logsink.New(logsink.Options{Verbose: *verbose, File: *logPath, Name: "tabgroups " + Version})
    if err != nil {
        return err
    }
    defer sink.Close()

    var in io.Reader = os.Stdin
    if name := fs.Arg(0); name != "-" {
        f, err := os.Open(name)
        if err != nil {
            return fmt.Errorf("open script: %w", err)
        }
        defer f.Close()
        in = f
    }

    store := state.NewStore(state.InitialState(), sink.Logf)
    if *workspace != "" {
        if err := restore(store, *workspace, false); err != nil {
            return err
        }
    }
    final, err := replay(store, in, os.Stdout, *trace)
    if err != nil {
        return err
    }
    if *save != "" {
        if err := cfg.Save(*save, cfg.FromState(final)); err != nil {
            return fmt.Errorf("write workspace: %w", err)
        }
    }
    return nil
}

// restore dispatches the actions that rebuild a saved workspace. A missing
// file is only an error when optional is false.
func restore(store *state.Store, path string, optional bool) error {
    if path == "" {
        return nil
    }
    ws, err := cfg.Load(path)
    if err != nil {
        if optional && errors.Is(err, os.ErrNotExist) {
            return nil
        }
        return err
    }
    for _, a := range ws.Actions() {
        if _, err := store.Dispatch(a); err != nil {
            return fmt.Errorf("restore workspace: %w", err)
        }
    }
    return nil
}

// replay feeds every action in r through store and writes the final state
// as indented JSON to w. With trace, each step's diff is written first.
func replay(store *state.Store, r io.Reader, w io.Writer, trace bool) (state.EditorState, error) {
    actions, err := state.ReadActions(r)
    if err != nil {
        return state.EditorState{}, err
    }
    if trace {
        view := diffw.NewDiffView()
        step := 0
        unsubscribe := store.Subscribe(func(prev, next state.EditorState) {
            step++
            fmt.Fprintf(w, "--- step %d ---\n", step)
            fmt.Fprint(w, view.View(state.ViewState{NoColor: true, Wrap: true}, prev, next))
        })
        defer unsubscribe()
    }
    for i, a := range actions {
        if _, err := store.Dispatch(a); err != nil {
            return state.EditorState{}, fmt.Errorf("action %d: %w", i+1, err)
        }
    }
    final := store.State()
    data, err := json.MarshalIndent(final, "", "  ")
    if err != nil {
        return state.EditorState{}, err
    }
    fmt.Fprintln(w, string(data))
    return final, nil
}
