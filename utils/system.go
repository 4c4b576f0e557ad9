package utils

import (
	"fmt"
	"os"
)

func MustGetenv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("%s env variable must be set to non empty value", key))
	}
	return v
}

func GetenvDefault(key string, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
