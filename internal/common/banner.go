package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config) {
	serviceURL := fmt.Sprintf("http://%s:%d", config.Server.Host, config.Server.Port)

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 70
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		` 8888888888 8888888 888b    888 88888888888 8888888b.`,
		` 888          888   8888b   888     888     888   Y88b`,
		` 888          888   88888b  888     888     888    888`,
		` 8888888      888   888Y88b 888     888     888   d88P`,
		` 888          888   888 Y88b888     888     8888888P'`,
		` 888          888   888  Y88888     888     888 T88b`,
		` 888          888   888   Y8888     888     888  T88b`,
		` 888        8888888 888    Y888     888     888   T88b`,
	}

	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n%s  Client Portfolio Tracking & Analytics%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)

	kvLines := [][2]string{
		{"Version", GetVersion()},
		{"Build", GetBuild()},
		{"Commit", GetGitCommit()},
		{"Environment", config.Environment},
		{"Service", serviceURL},
		{"Storage", config.Storage.Path},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "  %-14s %s\n", kv[0], kv[1])
	}
	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
}
