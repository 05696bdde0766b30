package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclFile is the top-level structure of a settings file. Every attribute is
// optional; missing ones keep their current value.
type hclFile struct {
	Game   *hclGame   `hcl:"game,block"`
	Timing *hclTiming `hcl:"timing,block"`
	UI     *hclUI     `hcl:"ui,block"`
	Log    *hclLog    `hcl:"log,block"`
}

type hclGame struct {
	Rows *int   `hcl:"rows,optional"`
	Cols *int   `hcl:"cols,optional"`
	Seed *int64 `hcl:"seed,optional"`
}

type hclTiming struct {
	Tick          *string `hcl:"tick,optional"`
	Countdown     *int    `hcl:"countdown,optional"`
	CountdownStep *string `hcl:"countdown_step,optional"`
	DeathStep     *string `hcl:"death_step,optional"`
	DeathPause    *string `hcl:"death_pause,optional"`
}

type hclUI struct {
	Frontend *string `hcl:"frontend,optional"`
	Sound    *bool   `hcl:"sound,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
	File   *string `hcl:"file,optional"`
}

// LoadFile applies the settings file at path on top of s.
func (s *Settings) LoadFile(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}
	return s.decode(path, file.Body)
}

// LoadBytes applies settings given as HCL source. filename is used in diagnostics.
func (s *Settings) LoadBytes(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse settings file %s: %w", filename, diags)
	}
	return s.decode(filename, file.Body)
}

func (s *Settings) decode(filename string, body hcl.Body) error {
	var parsed hclFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode settings file %s: %w", filename, diags)
	}

	if g := parsed.Game; g != nil {
		setInt(&s.Rows, g.Rows)
		setInt(&s.Cols, g.Cols)
		if g.Seed != nil {
			if *g.Seed < 0 {
				return fmt.Errorf("%s: seed must not be negative", filename)
			}
			s.Seed = uint64(*g.Seed)
		}
	}

	if t := parsed.Timing; t != nil {
		setInt(&s.Countdown, t.Countdown)
		for _, d := range []struct {
			name string
			src  *string
			dst  *time.Duration
		}{
			{"tick", t.Tick, &s.Tick},
			{"countdown_step", t.CountdownStep, &s.CountdownStep},
			{"death_step", t.DeathStep, &s.DeathStep},
			{"death_pause", t.DeathPause, &s.DeathPause},
		} {
			if d.src == nil {
				continue
			}
			v, err := time.ParseDuration(*d.src)
			if err != nil {
				return fmt.Errorf("%s: timing.%s: %w", filename, d.name, err)
			}
			*d.dst = v
		}
	}

	if u := parsed.UI; u != nil {
		setString(&s.Frontend, u.Frontend)
		if u.Sound != nil {
			s.Sound = *u.Sound
		}
	}

	if l := parsed.Log; l != nil {
		setString(&s.LogLevel, l.Level)
		setString(&s.LogFormat, l.Format)
		setString(&s.LogFile, l.File)
	}

	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
