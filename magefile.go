//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target when running mage without arguments.
var Default = Check

// packages is the package pattern every target works on.
const packages = "./..."

// Tidy prunes and verifies module requirements.
func Tidy() error {
	fmt.Println("Tidying go.mod...")
	if err := sh.Run("go", "mod", "tidy"); err != nil {
		return fmt.Errorf("go mod tidy: %w", err)
	}
	return sh.Run("go", "mod", "verify")
}

// Test runs the test suite with the race detector, since reducers are
// dispatched from concurrent goroutines.
func Test() error {
	fmt.Println("Testing reducer packages...")
	return sh.RunV("go", "test", "-race", "-count=1", packages)
}

// TestCover writes coverage.out and prints per-function coverage.
func TestCover() error {
	fmt.Println("Collecting coverage...")
	if err := sh.Run("go", "test", "-covermode=atomic", "-coverprofile=coverage.out", packages); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Lint runs golangci-lint over the module.
func Lint() error {
	fmt.Println("Linting...")
	return sh.RunV("golangci-lint", "run", packages)
}

// Vet reports suspicious constructs.
func Vet() error {
	return sh.RunV("go", "vet", packages)
}

// Check runs vet, lint and tests.
func Check() {
	mg.SerialDeps(Vet, Lint, Test)
}

// CI runs everything a pull request must pass.
func CI() {
	mg.SerialDeps(Tidy, Vet, TestCover)
}

// Clean removes coverage output.
func Clean() error {
	fmt.Println("Cleaning...")
	if err := os.Remove("coverage.out"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
