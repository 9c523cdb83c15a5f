package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// GetOutput returns the output format with priority: flag > fallback.
func GetOutput(cmd *cobra.Command, fallback string) string {
	if flag := cmd.Flag("output"); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	return fallback
}

// OutputJSON marshals v to indented JSON and prints it to w.
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// JoinList renders a list the way the listings show it: comma separated
// with no spaces.
func JoinList(items []string) string {
	return strings.Join(items, ",")
}

// FormatRelativeTime formats a time as a human-readable relative string (e.g., "just now", "5m ago").
func FormatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

// MaskSecret hides all but the edges of an API key or secret.
func MaskSecret(s string) string {
	if len(s) <= 10 {
		return "****"
	}
	return s[:7] + "..." + s[len(s)-4:]
}
