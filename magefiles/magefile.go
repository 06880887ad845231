//go:build mage

// Package main contains Mage build targets for figma-tokens.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "figma-tokens"
	cmdPkg  = "./cmd/figma-tokens"
)

// Default target to run when none is specified.
var Default = Build

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs Lint and Test.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Tokens pulls tokens from the file in $FIGMA_FILE into tokens.json.
func Tokens() error {
	mg.Deps(Build)
	file := os.Getenv("FIGMA_FILE")
	if file == "" {
		return fmt.Errorf("FIGMA_FILE is not set")
	}
	return sh.RunV(filepath.Join(binDir, binName), "--file", file)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
