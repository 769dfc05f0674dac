package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var (
	eventFile string
	envFile   string
)

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run one invocation locally and print the response envelope",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvFile(envFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		payload, err := readEvent(cmd.InOrStdin(), eventFile)
		if err != nil {
			return err
		}

		handler, _, err := buildHandler(ctx)
		if err != nil {
			return err
		}

		resp, err := handler.Handle(ctx, payload)
		if err != nil {
			return err
		}

		out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)

	invokeCmd.Flags().StringVarP(&eventFile, "event", "e", "", "file holding the trigger payload (\"-\" for stdin)")
	invokeCmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env when present)")
}

// loadEnvFile never overrides variables already set in the environment.
func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// readEvent returns the raw trigger payload; an empty object when no file is given.
func readEvent(stdin io.Reader, path string) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)
	switch path {
	case "":
		return json.RawMessage("{}"), nil
	case "-":
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read event: %w", err)
	}
	return json.RawMessage(data), nil
}
