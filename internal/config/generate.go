// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// GenerateCUE generates a CUE representation of the configuration that
// validates against the embedded schema.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// npmscope configuration file\n")
	sb.WriteString("// Values can be overridden with NPMSCOPE_* environment variables.\n\n")

	fmt.Fprintf(&sb, "root_dir:        %q\n", cfg.RootDir)
	fmt.Fprintf(&sb, "descriptor_path: %q\n", cfg.DescriptorPath)
	fmt.Fprintf(&sb, "search:          %q\n", cfg.Search)
	fmt.Fprintf(&sb, "replace:         %q\n", cfg.Replace)
	fmt.Fprintf(&sb, "error_policy:    %q\n", cfg.ErrorPolicy)

	writeList(&sb, "include", cfg.Include)
	writeList(&sb, "exclude", cfg.Exclude)

	sb.WriteString("\nformat: {\n")
	fmt.Fprintf(&sb, "\tindent:           %d\n", cfg.Format.Indent)
	fmt.Fprintf(&sb, "\ttrailing_newline: %v\n", cfg.Format.TrailingNewline)
	sb.WriteString("}\n")

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "\tlevel:  %q\n", cfg.Log.Level)
	fmt.Fprintf(&sb, "\tformat: %q\n", cfg.Log.Format)
	sb.WriteString("}\n")

	return sb.String()
}

func writeList(sb *strings.Builder, key string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s: [\n", key)
	for _, item := range items {
		fmt.Fprintf(sb, "\t%q,\n", item)
	}
	sb.WriteString("]\n")
}

// GenerateTOML renders the configuration as TOML, for tools that do not
// read CUE.
func GenerateTOML(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return string(out), nil
}
