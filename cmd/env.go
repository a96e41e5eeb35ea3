package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

// LoadEnv loads the env file named by the global env-file flag into the process
// environment so that command flags can pick up PATHTRACER_* values. A missing
// default file is not an error; a missing file named explicitly is.
func LoadEnv(ctx *cli.Context) error {
	path := ctx.GlobalString("env-file")
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) && !ctx.GlobalIsSet("env-file") {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}
