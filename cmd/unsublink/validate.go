package main

import (
	"fmt"

	"github.com/danespinosa/unsublink"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	var invalid int
	for _, u := range c.URLs {
		status := "valid"
		if !unsublink.ValidURL(u) {
			status = "invalid"
			invalid++
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", status, u)
	}

	if invalid > 0 {
		return unsublink.Errorf(unsublink.EINVALID, "%d of %d URLs invalid", invalid, len(c.URLs))
	}
	return nil
}
