//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "palabra"

// Default target runs when mage is invoked without arguments
var Default = Build

// Build compiles the palabra binary into ./bin
func Build() error {
	fmt.Println("Building", binaryName, "...")
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join("bin", binaryName), "./cmd/palabra")
}

// Install runs the tests and installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	fmt.Println("Installing", binaryName, "...")
	return sh.RunV("go", "install", "./cmd/palabra")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning...")
	return sh.Rm("bin")
}
