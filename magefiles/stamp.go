//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Stamp builds pagesync and stamps $TARGET with the page numbers of $SOURCE,
// writing $OUTPUT. $OFFSET is optional.
func Stamp() error {
	mg.Deps(Build)

	args, err := envArgs("SOURCE", "TARGET", "OUTPUT")
	if err != nil {
		return err
	}
	if off := os.Getenv("OFFSET"); off != "" {
		args = append(args, off)
	}
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Labels prints the label plan for $TARGET with optional $OFFSET.
func Labels() error {
	mg.Deps(Build)

	args, err := envArgs("TARGET")
	if err != nil {
		return err
	}
	args = append([]string{"labels"}, args...)
	if off := os.Getenv("OFFSET"); off != "" {
		args = append(args, off)
	}
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

func envArgs(names ...string) ([]string, error) {
	args := make([]string, 0, len(names))
	for _, n := range names {
		v := os.Getenv(n)
		if v == "" {
			return nil, fmt.Errorf("%s must be set", n)
		}
		args = append(args, v)
	}
	return args, nil
}
