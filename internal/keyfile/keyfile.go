// Package keyfile loads and saves DataPoint API keys in the two file forms
// commonly used for them: a plain text file holding only the key, and a JSON
// object with the key under "met_api_key".
package keyfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// JSONField is the JSON object key the API key is stored under.
const JSONField = "met_api_key"

// maxKeyFileSize bounds how much of a text key file is read. DataPoint keys
// are UUIDs, so anything larger is not a key file.
const maxKeyFileSize = 200

// FromTextFile reads an API key from a text file containing only the key and
// surrounding whitespace.
func FromTextFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open key file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, maxKeyFileSize)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return "", fmt.Errorf("read key file: %w", err)
	}
	return strings.TrimSpace(string(buf[:n])), nil
}

// ToTextFile writes an API key to a file as a single line.
func ToTextFile(path, key string) error {
	if err := os.WriteFile(path, []byte(key+"\n"), 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

// FromJSONFile reads an API key from a JSON file. The file must contain an
// object with the key under "met_api_key"; other entries are ignored.
func FromJSONFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read key file: %w", err)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("key file %q does not contain a JSON object: %w", path, err)
	}

	v, ok := obj[JSONField]
	if !ok {
		return "", fmt.Errorf("key file %q does not contain an API key", path)
	}
	key, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("key file %q: %s is not a string", path, JSONField)
	}
	return key, nil
}

// ToJSONFile saves an API key as a JSON object with a single "met_api_key"
// entry.
func ToJSONFile(path, key string) error {
	data, err := json.Marshal(map[string]string{JSONField: key})
	if err != nil {
		return fmt.Errorf("encode key file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

// Load resolves a key from a path of either supported form, choosing by the
// .json extension.
func Load(path string) (string, error) {
	if strings.HasSuffix(path, ".json") {
		return FromJSONFile(path)
	}
	return FromTextFile(path)
}
