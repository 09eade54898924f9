package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/petrilli/aletheia/cmd/aletheia/commands"
	"github.com/petrilli/aletheia/internal/app"
	"github.com/petrilli/aletheia/internal/config"
)

func getSecretCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "put",
			Usage:     "Encrypt a value and store it as a secret",
			ArgsUsage: "<name>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "value",
					Aliases: []string{"v"},
					Usage:   "Secret value (omit to read from --file or stdin)",
				},
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"i"},
					Usage:   "Read the secret value from a file",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				chestUseCase, err := container.ChestUseCase()
				if err != nil {
					return err
				}

				return commands.RunPutSecret(
					ctx,
					chestUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.Args().First(),
					cmd.String("value"),
					cmd.String("file"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "get",
			Usage:     "Fetch and decrypt a stored secret",
			ArgsUsage: "<name>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Write the secret value to a file instead of stdout",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				chestUseCase, err := container.ChestUseCase()
				if err != nil {
					return err
				}

				return commands.RunGetSecret(
					ctx,
					chestUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.Args().First(),
					cmd.String("output"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "delete",
			Usage:     "Delete a stored secret",
			ArgsUsage: "<name>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				chestUseCase, err := container.ChestUseCase()
				if err != nil {
					return err
				}

				return commands.RunDeleteSecret(
					ctx,
					chestUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.Args().First(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list",
			Usage: "List stored secrets",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "prefix",
					Aliases: []string{"p"},
					Usage:   "Only list secrets whose names start with this prefix",
				},
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"l"},
					Value:   100,
					Usage:   "Maximum number of secrets to list",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				chestUseCase, err := container.ChestUseCase()
				if err != nil {
					return err
				}

				return commands.RunListSecrets(
					ctx,
					chestUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("prefix"),
					int(cmd.Int("limit")),
					cmd.String("format"),
				)
			},
		},
	}
}
