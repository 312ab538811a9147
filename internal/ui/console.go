package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	successText = color.New(color.FgGreen, color.Bold)
	errorText   = color.New(color.FgRed, color.Bold)
	infoText    = color.New(color.FgCyan)
	mutedText   = color.New(color.FgHiBlack)
)

// PrintStartup announces the listening address and the registered routes.
func PrintStartup(addr string) {
	successText.Printf("🚗 CarDiagnosis is running at http://%s\n", addr)
	infoText.Println("   Endpoints:")
	mutedText.Println("   • POST /api/diagnose/code  - diagnose an OBD-II trouble code")
	mutedText.Println("   • POST /api/diagnose/media - diagnose a photo, clip, or sound")
	mutedText.Println("   • GET  /health             - health check")
	mutedText.Println("   • GET  /metrics            - prometheus metrics")
	fmt.Println()
}

// PrintInfo prints a general status line.
func PrintInfo(msg string) {
	infoText.Printf("[INFO] %s\n", msg)
}

// PrintError prints a fatal startup error.
func PrintError(msg string) {
	errorText.Printf("[ERROR] %s\n", msg)
}

// PrintShutdown prints the graceful shutdown notices.
func PrintShutdown() {
	fmt.Println()
	infoText.Println("⏳ Shutting down gracefully...")
}

// PrintStopped prints the final goodbye.
func PrintStopped() {
	successText.Println("✅ Server stopped. Goodbye!")
}
