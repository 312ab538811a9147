// Package ui provides colorized console output for server startup and
// notable runtime events. Structured logs go to slog; this package only
// makes the terminal pleasant for whoever started the process.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// PrintBanner displays the startup banner.
func PrintBanner() {
	cyan := color.New(color.FgCyan, color.Bold)
	hiCyan := color.New(color.FgHiCyan)
	dim := color.New(color.FgHiBlack)

	fmt.Println()
	cyan.Println("  ██████╗ █████╗ ██████╗ ██████╗ ██╗ █████╗  ██████╗ ")
	cyan.Println(" ██╔════╝██╔══██╗██╔══██╗██╔══██╗██║██╔══██╗██╔════╝ ")
	cyan.Println(" ██║     ███████║██████╔╝██║  ██║██║███████║██║  ███╗")
	cyan.Println(" ██║     ██╔══██║██╔══██╗██║  ██║██║██╔══██║██║   ██║")
	cyan.Println(" ╚██████╗██║  ██║██║  ██║██████╔╝██║██║  ██║╚██████╔╝")
	dim.Println("  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚═╝╚═╝  ╚═╝ ╚═════╝ ")
	hiCyan.Println("        AI-assisted vehicle diagnosis service")
	fmt.Println()
}
