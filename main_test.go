package main

import (
    "bytes"
    "encoding/json"
    "errors"
    "os"
    "path/filepath"
    "strings"
    "testing"

    cfg "tabgroups/internal/config"
    "tabgroups/internal/tui/state"
)

const script = `# scenario: split then close
{"type":"OPEN","payload":{"documentId":"a","fileName":"a.bot"}}
{"type":"OPEN","payload":{"documentId":"b","fileName":"b.bot"}}

{"type":"SPLIT_TAB","payload":{"srcEditorKey":"primary","destEditorKey":"secondary","documentId":"b"}}
{"type":"CLOSE","payload":{"editorKey":"primary","documentId":"a"}}
`

func TestReplayPrintsFinalState(t *testing.T) {
    var out bytes.Buffer
    final, err := replay(state.NewStore(state.InitialState(), nil), strings.NewReader(script), &out, false)
    if err != nil {
        t.Fatalf("replay: %v", err)
    }
    // closing the last primary tab promotes the secondary group
    p := final.Group(state.Primary)
    if len(p.TabOrder) != 1 || p.TabOrder[0] != "b" || final.ActiveEditor != state.Primary {
        t.Fatalf("unexpected final state: %+v", final)
    }
    var decoded state.EditorState
    if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
        t.Fatalf("output is not state JSON: %v\n%s", err, out.String())
    }
    if decoded.Group(state.Primary).ActiveDocumentID != "b" {
        t.Fatalf("decoded state mismatch: %+v", decoded)
    }
}

func TestReplayTrace(t *testing.T) {
    var out bytes.Buffer
    if _, err := replay(state.NewStore(state.InitialState(), nil), strings.NewReader(script), &out, true); err != nil {
        t.Fatalf("replay: %v", err)
    }
    if !strings.Contains(out.String(), "--- step 4 ---") || !strings.Contains(out.String(), "STATE DIFF (Unified)") {
        t.Fatalf("trace output missing steps:\n%s", out.String())
    }
}

func TestReplayStopsOnUnknownGroup(t *testing.T) {
    bad := `{"type":"SET_ACTIVE_EDITOR","payload":{"editorKey":"tertiary"}}`
    _, err := replay(state.NewStore(state.InitialState(), nil), strings.NewReader(bad), &bytes.Buffer{}, false)
    if !errors.Is(err, state.ErrUnknownGroup) {
        t.Fatalf("want ErrUnknownGroup, got %v", err)
    }
}

func TestReplayReportsBadLine(t *testing.T) {
    bad := "{\"type\":\"OPEN\",\"payload\":{\"documentId\":\"a\"}}\n{not json}\n"
    _, err := replay(state.NewStore(state.InitialState(), nil), strings.NewReader(bad), &bytes.Buffer{}, false)
    if err == nil || !strings.Contains(err.Error(), "line 2") {
        t.Fatalf("want line-numbered error, got %v", err)
    }
}

func TestRestoreWorkspace(t *testing.T) {
    store := state.NewStore(state.InitialState(), nil)
    if err := restore(store, filepath.Join(t.TempDir(), "missing.json"), true); err != nil {
        t.Fatalf("optional missing workspace should be ignored: %v", err)
    }
    if err := restore(store, filepath.Join(t.TempDir(), "missing.json"), false); err == nil {
        t.Fatalf("required missing workspace should fail")
    }

    p := filepath.Join(t.TempDir(), "ws.json")
    ws := &cfg.Workspace{ActiveEditor: state.Primary, Documents: []cfg.Entry{
        {Group: state.Primary, Document: state.Document{DocumentID: "a"}},
        {Group: state.Secondary, Document: state.Document{DocumentID: "b"}},
    }}
    if err := cfg.Save(p, ws); err != nil {
        t.Fatalf("save: %v", err)
    }
    if err := restore(store, p, false); err != nil {
        t.Fatalf("restore: %v", err)
    }
    s := store.State()
    if _, ok := s.Group(state.Secondary).Documents["b"]; !ok {
        t.Fatalf("b should be restored into secondary: %+v", s)
    }
}

func TestReplayErrorStillClosesLog(t *testing.T) {
    dir := t.TempDir()
    t.Setenv("TABGROUPS_CONFIG", filepath.Join(dir, "config.toml"))
    logPath := filepath.Join(dir, "replay.log")
    script := filepath.Join(dir, "bad.jsonl")
    if err := os.WriteFile(script, []byte(`{"type":"SET_ACTIVE_EDITOR","payload":{"editorKey":"tertiary"}}`+"\n"), 0o644); err != nil {
        t.Fatalf("write script: %v", err)
    }
    err := cmdReplay([]string{"--log-file", logPath, script})
    if !errors.Is(err, state.ErrUnknownGroup) {
        t.Fatalf("want ErrUnknownGroup, got %v", err)
    }
    data, rerr := os.ReadFile(logPath)
    if rerr != nil {
        t.Fatalf("read log: %v", rerr)
    }
    if !strings.Contains(string(data), " stopped at ") {
        t.Fatalf("log file was not closed cleanly:\n%s", data)
    }

    err = cmdReplay([]string{"--log-file", logPath, filepath.Join(dir, "missing.jsonl")})
    if err == nil || !strings.Contains(err.Error(), "open script") {
        t.Fatalf("want open script error, got %v", err)
    }
}
