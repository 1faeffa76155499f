package main

import (
	"github.com/lox/warsim/internal/fileutil"
	"github.com/lox/warsim/internal/report"
)

type HistCmd struct {
	File  string `arg:"" type:"existingfile" help:"Turn count JSON file written by run"`
	Bins  int    `default:"20" help:"Number of bins"`
	Width int    `default:"50" help:"Width of the longest bar"`
}

func (c *HistCmd) Run(globals *Globals) error {
	var turns []uint64
	if err := fileutil.ReadJSON(c.File, &turns); err != nil {
		return err
	}
	report.Histogram(globals.stdout, turns, c.Bins, c.Width)
	return nil
}
