package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveJson marshals data and writes it to path, creating parent
// directories as needed.
func SaveJson(path string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %s", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %s", err)
	}
	defer file.Close()

	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshalling data: %s", err)
	}

	_, err = file.Write(bs)
	return err
}
