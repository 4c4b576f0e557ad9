package services

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	CredDir      = ".tm-manager"
	CredFilename = "cred.json"
)

type Credentials struct {
	Token string `json:"token"`
}

func credPath() string {
	homeDir := os.Getenv("HOME")
	return filepath.Join(homeDir, CredDir, CredFilename)
}

func ParseCredentials(body []byte) (*Credentials, error) {
	credentials := &Credentials{}
	err := json.Unmarshal(body, &credentials)
	if err != nil {
		return nil, err
	}
	return credentials, nil
}

func (c *Credentials) Save() error {
	err := os.MkdirAll(filepath.Dir(credPath()), os.ModePerm)
	if err != nil {
		return err
	}

	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(credPath(), data, 0o600)
}

func LoadCredentials() (*Credentials, error) {
	data, err := os.ReadFile(credPath())
	if err != nil {
		return nil, err
	}
	return ParseCredentials(data)
}
