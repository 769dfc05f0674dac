package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d4rkfella/object-fetch/internal/config"
)

var flagForEnv = map[string]string{
	config.EnvBucketName: "--bucket-name",
	config.EnvFileName:   "--file-name",
}

var issueForEnv = map[string]string{
	config.EnvBucketName: "Missing bucket name (--bucket-name)",
	config.EnvFileName:   "Missing object key (--file-name)",
}

// loadConfig resolves the configuration through viper. Any failure is returned
// as a *ValidationError wrapping the underlying config error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viperLookup)
	if err == nil {
		return cfg, nil
	}
	return nil, validationErrorFor(err)
}

func validationErrorFor(err error) *ValidationError {
	verr := &ValidationError{
		Sections: make(map[string]*ValidationSection),
		ExitCode: 1,
		Err:      err,
	}

	var missingErr *config.MissingError
	if errors.As(err, &missingErr) {
		section := &ValidationSection{}
		var flagNames []string
		for _, key := range missingErr.Keys {
			issue, ok := issueForEnv[key]
			if !ok {
				issue = fmt.Sprintf("Missing %s", key)
			}
			section.Issues = append(section.Issues, issue)
			if flag, ok := flagForEnv[key]; ok {
				flagNames = append(flagNames, flag)
			}
		}
		section.Solutions, section.SettingAdvice = generateStandardFixes(flagNames)
		verr.Sections["Object Source"] = section
		return verr
	}

	verr.Sections["Runtime"] = &ValidationSection{
		Issues:    []string{err.Error()},
		Solutions: []string{"Correct the value named above"},
	}
	return verr
}

func generateStandardFixes(flagNames []string) (solutions []string, settingAdvice []string) {
	solutions = []string{"Provide the required value(s)"}

	var flagsWithValues []string
	for _, flag := range flagNames {
		flagsWithValues = append(flagsWithValues, flag+" VALUE")
	}
	flagList := strings.Join(flagsWithValues, " ")

	var envVars []string
	for _, flag := range flagNames {
		envVar := strings.ToUpper(strings.ReplaceAll(strings.TrimPrefix(flag, "--"), "-", "_"))
		envVars = append(envVars, envVar+"=VALUE")
	}
	envList := strings.Join(envVars, " ")

	settingAdvice = []string{
		fmt.Sprintf("1. Via flags: %s", flagList),
		fmt.Sprintf("2. Via environment variables: %s", envList),
		"3. Via config file (e.g., ~/.object-fetch.yaml)",
	}

	return
}
