//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Builds the raytracer CLI into bin/raytracer.
func (Build) Cli() error {
	return sh.RunV("go", "build", "-o", "bin/raytracer", ".")
}

// Builds the web server into bin/raytracer-web.
func (Build) Web() error {
	return sh.RunV("go", "build", "-o", "bin/raytracer-web", "./web")
}

// Builds every binary.
func (Build) All() {
	mg.Deps(Build.Cli, Build.Web)
}

// Runs go vet and the test suite.
func Test() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "test", "./...")
}
