//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "sdprompt"
	mainPath   = "./cmd/sdprompt"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the sdprompt binary into the project root
func Build() error {
	fmt.Println("Building", binaryName)
	return sh.RunV("go", "build", "-o", binaryName, mainPath)
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and copies the binary to ~/go/bin
func Install() error {
	mg.Deps(Build)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	target := filepath.Join(home, "go", "bin")
	if err := os.MkdirAll(target, 0755); err != nil {
		return err
	}
	return sh.Copy(filepath.Join(target, binaryName), binaryName)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binaryName)
}
