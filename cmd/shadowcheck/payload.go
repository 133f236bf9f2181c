package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// readPayload decodes a JSON file, or stdin for "-".
func readPayload(path string, dst any) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open payload: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode payload %s: %w", path, err)
	}
	return nil
}
