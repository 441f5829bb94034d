package rules

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML rule file and returns the table with raw bytes.
// SSOT 핵심: KnownFields(true)로 오타/미사용 필드 즉시 실패
func Load(path string) (*Table, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var t Table
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // 알 수 없는 필드 발견 시 에러 반환
	if err := dec.Decode(&t); err != nil {
		return nil, nil, err
	}

	if err := Validate(&t); err != nil {
		return nil, data, err
	}

	return &t, data, nil
}

// LoadOrDefault loads the rule file when a path is configured and falls
// back to the built-in table otherwise.
func LoadOrDefault(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	t, _, err := Load(path)
	return t, err
}

// Hash generates a SHA256 fingerprint of a rule table for audit logs.
// JSON marshal of maps sorts keys, so the hash is reproducible.
func Hash(t *Table) (string, error) {
	jsonBytes, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}
