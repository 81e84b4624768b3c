package config

import (
	"strings"

	"github.com/urfave/cli/v3"
)

const envPrefix = "NOTIONLOG_"

// sources reads a flag from NOTIONLOG_<name>, then from the Actions input INPUT_<input>,
// then from any extra variables in order.
func sources(name, input string, extra ...string) cli.ValueSourceChain {
	keys := []string{envPrefix + name}
	if input != "" {
		keys = append(keys, "INPUT_"+input)
	}
	keys = append(keys, extra...)
	return cli.EnvVars(keys...)
}

// flagEnvName converts "field-tag-url" into "FIELD_TAG_URL"
func flagEnvName(flag string) string {
	return strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
