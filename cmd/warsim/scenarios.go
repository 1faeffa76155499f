package main

import (
	"fmt"

	"github.com/lox/warsim/internal/scenario"
)

type ScenariosCmd struct {
	Config string `short:"c" type:"path" default:"warsim.hcl" help:"Scenario file, built-in scenarios are used when it does not exist"`
}

func (c *ScenariosCmd) Run(globals *Globals) error {
	config, err := scenario.Load(c.Config)
	if err != nil {
		return err
	}

	setups, err := config.Select()
	if err != nil {
		return err
	}
	for _, setup := range setups {
		games := "time budget"
		if setup.Games > 0 {
			games = fmt.Sprintf("%d games", setup.Games)
		}
		fmt.Fprintf(globals.stdout, "%-16s %s (k=%d, %d cards, %s)\n",
			setup.Name, setup.Description, setup.Params.WarDepth, setup.Cards(), games)
	}
	return nil
}
