package main

import (
	"fmt"
	"os"

	"github.com/DmarshalTU/safecracker/pkg/errors"
	"github.com/DmarshalTU/safecracker/pkg/exitcode"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint, ok := errors.GetDetail(err, "hint"); ok {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(exitcode.FromError(err))
	}
}
