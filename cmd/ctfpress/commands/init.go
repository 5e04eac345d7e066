package commands

import (
	"fmt"
	"io"

	"git.home.luguber.info/inful/ctfpress/internal/config"
)

// DefaultConfigFile is written by 'init' when no -c path is given.
const DefaultConfigFile = "ctfpress.yaml"

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = DefaultConfigFile
	}
	return RunInit(path, i.Force, g.out())
}

func RunInit(configPath string, force bool, out io.Writer) error {
	if err := config.Init(configPath, force); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Wrote configuration to %s\n", configPath)
	return nil
}
