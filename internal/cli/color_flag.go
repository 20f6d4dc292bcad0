package cli

import (
	"fmt"

	"github.com/alexanderramin/pathsense/internal/config"
	"github.com/spf13/pflag"
)

// colorFlag is a pflag.Value accepting auto, always or never.
type colorFlag struct {
	mode config.ColorMode
	set  bool
}

var _ pflag.Value = (*colorFlag)(nil)

func (f *colorFlag) String() string {
	if f.mode == "" {
		return string(config.ColorAuto)
	}
	return string(f.mode)
}

func (f *colorFlag) Set(s string) error {
	mode, ok := config.ParseColorMode(s)
	if !ok {
		return fmt.Errorf("must be one of auto, always, never")
	}
	f.mode = mode
	f.set = true
	return nil
}

func (f *colorFlag) Type() string {
	return "auto|always|never"
}

func addColorFlag(fs *pflag.FlagSet, f *colorFlag) {
	fs.Var(f, "color", "Colorize output: auto, always or never")
}
