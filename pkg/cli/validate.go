/*
Copyright © 2025 Fieldvet Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/fieldvet/fieldvet/pkg/schema"
	"github.com/fieldvet/fieldvet/pkg/serializer"
	"github.com/fieldvet/fieldvet/pkg/validator"
)

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "validate a record against a schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "schema",
				Aliases:  []string{"s"},
				Usage:    "path to the schema definition (YAML)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "record",
				Aliases:  []string{"r"},
				Usage:    "path to the record document (YAML mapping)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format (yaml, json, table)",
				Value: "yaml",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (default: stdout)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-violation",
				Usage: "exit non-zero when the record has violations (CI usage)",
			},
		},
		Action: runValidate,
	}
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	def, err := schema.Load(cmd.String("schema"))
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	record, err := loadRecord(cmd.String("record"))
	if err != nil {
		return err
	}

	result, err := validator.New().Validate(ctx, def, validator.Map(record))
	if err != nil {
		return fmt.Errorf("validating record: %w", err)
	}

	if err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")).Serialize(result); err != nil {
		return err
	}

	if cmd.Bool("fail-on-violation") && !result.Valid() {
		return cli.Exit(fmt.Sprintf("record has %d violation(s)", len(result.Violations)), 1)
	}
	return nil
}
