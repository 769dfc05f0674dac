package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/d4rkfella/object-fetch/internal/logging"
)

var cfgFile string

// rootCmd runs the Lambda runtime loop when called without a subcommand, which
// is how the provided.al2023 runtime starts the bootstrap binary.
var rootCmd = &cobra.Command{
	Use:          "object-fetch",
	Short:        "Serverless function returning the text content of one S3 object",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(viper.GetString("log-level"), viper.GetString("log-format"))
	},
	RunE: runLambda,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// SetContext sets the context on the root command
func SetContext(ctx context.Context) {
	rootCmd.SetContext(ctx)
}

// SetVersion sets the build information printed by --version.
func SetVersion(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s)", version, commit)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.object-fetch.yaml)")

	// Object source
	rootCmd.PersistentFlags().String("bucket-name", "", "S3 bucket holding the object")
	rootCmd.PersistentFlags().String("file-name", "", "key of the object to return")

	// Storage endpoint
	rootCmd.PersistentFlags().String("aws-region", "", "AWS region (SDK default resolution when empty)")
	rootCmd.PersistentFlags().String("s3-endpoint", "", "S3-compatible endpoint URL")

	// Runtime
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "log format (json, console)")
	rootCmd.PersistentFlags().Float64("memory-limit-ratio", 0.85, "ratio of available memory used for GOMEMLIMIT")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		// Lambda sandboxes may run without $HOME; the config file is optional there.
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".object-fetch")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// viperLookup adapts viper to config.LookupFunc. Environment variable names map
// to flag keys (BUCKET_NAME -> bucket-name), and viper's precedence applies:
// flag, then environment, then config file.
func viperLookup(envKey string) (string, bool) {
	key := strings.ToLower(strings.ReplaceAll(envKey, "_", "-"))
	if !viper.IsSet(key) {
		return "", false
	}
	return viper.GetString(key), true
}
