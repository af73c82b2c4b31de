/*
Copyright © 2025 Fieldvet Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/fieldvet/fieldvet/pkg/rule"
	"github.com/fieldvet/fieldvet/pkg/schema"
	"github.com/fieldvet/fieldvet/pkg/validator"
)

func lintCommand() *cli.Command {
	return &cli.Command{
		Name:  "lint",
		Usage: "check that a schema compiles against the built-in rule registry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "schema",
				Aliases:  []string{"s"},
				Usage:    "path to the schema definition (YAML)",
				Required: true,
			},
		},
		Action: runLint,
	}
}

func runLint(_ context.Context, cmd *cli.Command) error {
	def, err := schema.Load(cmd.String("schema"))
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	md, err := validator.Compile(def, rule.Builtin())
	if err != nil {
		return fmt.Errorf("schema %q does not compile: %w", def.Name, err)
	}

	fmt.Printf("schema %q compiles: %d field(s)\n", md.TypeName, len(md.Fields()))
	return nil
}
