package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func contextWithLogLevel(t *testing.T, level string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", "", "")
	require.NoError(t, set.Set("log-level", level))
	return cli.NewContext(nil, set, nil)
}

func TestSetupLogger(t *testing.T) {
	t.Run("accepts known levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "INFO", "Debug"} {
			assert.NoError(t, setupLogger(contextWithLogLevel(t, level)), "level %q", level)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		err := setupLogger(contextWithLogLevel(t, "verbose"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestRunCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "storyvault",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Action: func(*cli.Context) error { return nil },
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "base",
						Value: "UserStories",
					},
				},
			},
		},
	}

	t.Run("embedding-model is required", func(t *testing.T) {
		err := app.Run([]string{"storyvault", "run"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "embedding-model")
	})

	t.Run("base has default value", func(t *testing.T) {
		cmd := app.Commands[0]
		var baseFlag *cli.StringFlag
		for _, f := range cmd.Flags {
			if sf, ok := f.(*cli.StringFlag); ok && sf.Name == "base" {
				baseFlag = sf
			}
		}
		require.NotNil(t, baseFlag)
		assert.Equal(t, "UserStories", baseFlag.Value)
	})
}
