package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/lineflow/measure"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("config: got %+v, want %+v", cfg, Default())
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineflow.toml")
	data := `
engine = "fixed"
advance = 10
row_height = 20
bold = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine != EngineFixed || cfg.Advance != 10 || cfg.RowHeight != 20 || !cfg.Bold {
		t.Fatalf("config: got %+v", cfg)
	}
	if got, want := cfg.TabWidth, 4; got != want {
		t.Fatalf("tab width default: got %d, want %d", got, want)
	}

	lc := cfg.Layout(nil)
	if lc.RowHeight != 20 || !lc.Style.Bold {
		t.Fatalf("layout config: got %+v", lc)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err: got %v, want os.ErrNotExist", err)
	}
}

func TestParse_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{name: "engine", data: `engine = "braille"`, want: "engine"},
		{name: "advance", data: "engine = \"fixed\"\nadvance = 0", want: "advance"},
		{name: "row height", data: `row_height = -1`, want: "row_height"},
		{name: "tab width", data: `tab_width = 0`, want: "tab_width"},
		{name: "unknown key", data: `colour = "red"`, want: "colour"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err: got %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err %q does not name %q", err, tc.want)
			}
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	if _, err := Parse([]byte("engine = ")); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestMeasurer_BuildsEachEngine(t *testing.T) {
	for _, engine := range []string{EngineFixed, EngineCells, EngineBitmap, EngineFace, EngineVector} {
		cfg := Default()
		cfg.Engine = engine
		m, err := cfg.Measurer()
		if err != nil {
			t.Fatalf("%s: %v", engine, err)
		}
		if w := m.MeasureRun([]rune("ab"), 0, 2, cfg.Style()); w <= 0 {
			t.Fatalf("%s: width of %q: got %v, want > 0", engine, "ab", w)
		}
	}

	cfg := Default()
	cfg.Engine = EngineFace
	m, _ := cfg.Measurer()
	if _, ok := m.(*measure.Cache); !ok {
		t.Fatalf("face engine: got %T, want *measure.Cache", m)
	}
}
