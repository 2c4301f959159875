package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grindlemire/tuist"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.FrameInterval != 16*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 16ms", cfg.FrameInterval)
	}
	if !cfg.Mouse {
		t.Error("Mouse = false, want true")
	}
	if cfg.Backend != BackendANSI {
		t.Errorf("Backend = %q, want %q", cfg.Backend, BackendANSI)
	}
	if cfg.Board.File != "board.yaml" {
		t.Errorf("Board.File = %q, want board.yaml", cfg.Board.File)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	type tc struct {
		content string
		env     map[string]string
		want    Config
		wantErr string
	}
	tests := map[string]tc{
		"full file": {
			content: `
frame_interval: 33ms
mouse: false
backend: tcell
board:
  file: /tmp/work.yaml
theme:
  header: bright-cyan
  columns: [red, green]
`,
			want: Config{
				FrameInterval: 33 * time.Millisecond,
				Backend:       BackendTcell,
				Board:         BoardConfig{File: "/tmp/work.yaml"},
				Theme:         ThemeConfig{Header: "bright-cyan", Columns: []string{"red", "green"}},
			},
		},
		"defaults fill gaps": {
			content: "backend: tcell\n",
			want: Config{
				FrameInterval: 16 * time.Millisecond,
				Mouse:         true,
				Backend:       BackendTcell,
				Board:         BoardConfig{File: "board.yaml"},
			},
		},
		"env overrides file": {
			content: "backend: tcell\nmouse: true\n",
			env: map[string]string{
				"TUIST_BACKEND":      "ansi",
				"TUIST_MOUSE":        "false",
				"TUIST_BOARD_FILE":   "$TEST_BOARD_DIR/b.yaml",
				"TEST_BOARD_DIR":     "/data",
				"TUIST_THEME_HEADER": "red",
			},
			want: Config{
				FrameInterval: 16 * time.Millisecond,
				Backend:       BackendANSI,
				Board:         BoardConfig{File: "/data/b.yaml"},
				Theme:         ThemeConfig{Header: "red"},
			},
		},
		"bad backend": {
			content: "backend: curses\n",
			wantErr: "backend must be",
		},
		"zero frame interval": {
			content: "frame_interval: 0s\n",
			wantErr: "frame_interval must be positive",
		},
		"empty board file": {
			content: "board:\n  file: \"\"\n",
			wantErr: "board.file is empty",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "config.yaml")
			writeFile(t, path, tt.content)

			cfg, err := LoadFromPath(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFromPath() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFromPath() = %v", err)
			}
			if cfg.FrameInterval != tt.want.FrameInterval {
				t.Errorf("FrameInterval = %v, want %v", cfg.FrameInterval, tt.want.FrameInterval)
			}
			if cfg.Mouse != tt.want.Mouse {
				t.Errorf("Mouse = %v, want %v", cfg.Mouse, tt.want.Mouse)
			}
			if cfg.Backend != tt.want.Backend {
				t.Errorf("Backend = %q, want %q", cfg.Backend, tt.want.Backend)
			}
			if cfg.Board.File != tt.want.Board.File {
				t.Errorf("Board.File = %q, want %q", cfg.Board.File, tt.want.Board.File)
			}
			if cfg.Theme.Header != tt.want.Theme.Header {
				t.Errorf("Theme.Header = %q, want %q", cfg.Theme.Header, tt.want.Theme.Header)
			}
			if strings.Join(cfg.Theme.Columns, ",") != strings.Join(tt.want.Theme.Columns, ",") {
				t.Errorf("Theme.Columns = %v, want %v", cfg.Theme.Columns, tt.want.Theme.Columns)
			}
		})
	}
}

func TestLoadFromPath_Missing(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFromPath() = nil error for a missing file")
	}
}

func TestLoad_ProjectOverridesUser(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeFile(t, filepath.Join(xdg, "tuist", "config.yaml"), "backend: tcell\nframe_interval: 20ms\n")

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".tuist.yaml"), "frame_interval: 40ms\n")
	nested := filepath.Join(project, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	t.Chdir(nested)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Backend != BackendTcell {
		t.Errorf("Backend = %q, want the user setting %q", cfg.Backend, BackendTcell)
	}
	if cfg.FrameInterval != 40*time.Millisecond {
		t.Errorf("FrameInterval = %v, want the project setting 40ms", cfg.FrameInterval)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Backend != BackendANSI || cfg.Board.File != "board.yaml" {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestUserConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, want := UserConfigPath(), filepath.Join("/xdg", "tuist", "config.yaml"); got != want {
		t.Errorf("UserConfigPath() = %q, want %q", got, want)
	}
}

func TestThemeConfig_Resolve(t *testing.T) {
	type tc struct {
		in           ThemeConfig
		wantHeader   tuist.Color
		wantSelected tuist.Color
		wantColumns  []tuist.Color
		wantErr      string
	}
	tests := map[string]tc{
		"empty keeps defaults": {
			wantHeader:   tuist.Yellow,
			wantSelected: tuist.White,
			wantColumns:  []tuist.Color{tuist.Blue, tuist.Yellow, tuist.Green},
		},
		"overrides": {
			in:           ThemeConfig{Header: "bright_magenta", Selected: "Cyan", Columns: []string{"red"}},
			wantHeader:   tuist.BrightMagenta,
			wantSelected: tuist.Cyan,
			wantColumns:  []tuist.Color{tuist.Red},
		},
		"bad color": {
			in:      ThemeConfig{Muted: "mauve"},
			wantErr: "theme.muted",
		},
		"bad column": {
			in:      ThemeConfig{Columns: []string{"red", "puce"}},
			wantErr: "theme.columns[1]",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			theme, err := tt.in.Resolve()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() = %v", err)
			}
			if theme.Header != tt.wantHeader {
				t.Errorf("Header = %v, want %v", theme.Header, tt.wantHeader)
			}
			if theme.Selected != tt.wantSelected {
				t.Errorf("Selected = %v, want %v", theme.Selected, tt.wantSelected)
			}
			if len(theme.Columns) != len(tt.wantColumns) {
				t.Fatalf("Columns = %v, want %v", theme.Columns, tt.wantColumns)
			}
			for i := range theme.Columns {
				if theme.Columns[i] != tt.wantColumns[i] {
					t.Errorf("Columns[%d] = %v, want %v", i, theme.Columns[i], tt.wantColumns[i])
				}
			}
		})
	}
}
