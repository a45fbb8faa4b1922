package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"pdficon/icon"
	"pdficon/log"
)

// outputPath is where the Tauri bundler expects the source icon, relative to
// this tool's directory.
func outputPath() string {
	return filepath.Join(toolDir(), "..", "src-tauri", "icons", "icon.png")
}

// toolDir is the directory holding this file, so the output lands in the
// same place for `go run .` from anywhere. Built binaries without source
// information fall back to their own directory.
func toolDir() string {
	if _, file, _, ok := runtime.Caller(0); ok && filepath.IsAbs(file) {
		return filepath.Dir(file)
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func createIcon() (string, error) {
	return icon.Create(outputPath(), icon.FontCandidates)
}

func main() {
	log.Init(os.Stderr)
	defer log.Close()

	path, err := createIcon()
	if err != nil {
		log.Errorf("create icon: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Close()
		os.Exit(1)
	}

	done := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	fmt.Println(done.Render(fmt.Sprintf("Icon saved to %s (%dx%d)", path, icon.Size, icon.Size)))
}
