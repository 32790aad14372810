//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Run mg.Namespace

// Renders one scene ("2", "4", "5" or "6.1") into data/.
func (Run) Scene(name string) error {
	mg.Deps(Build.Cli)
	return sh.RunV("./bin/raytracer", name)
}

// Renders every scene into data/.
func (Run) All() error {
	mg.Deps(Build.Cli)
	for _, name := range []string{"2", "4", "5", "6.1"} {
		if err := sh.RunV("./bin/raytracer", name); err != nil {
			return err
		}
	}
	return nil
}

// Converts a P3 image to a bitmap beside it.
func (Run) Convert(path string) error {
	mg.Deps(Build.Cli)
	return sh.RunV("./bin/raytracer", "-convert", path)
}

// Starts the web server on port 8080.
func (Run) Web() error {
	mg.Deps(Build.Web)
	return sh.RunV("./bin/raytracer-web", "-port", "8080")
}
