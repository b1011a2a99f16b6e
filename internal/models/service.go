// Package models contains the core data structures for the application.
package models

import "time"

// Service is a single catalog record. ID is assigned by the backing store.
type Service struct {
	ID          uint32 `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`
	Versions    uint32 `json:"versions" toml:"versions"`
}

// Info represents general information about the running server.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
	Backend     string    `json:"backend"`
}
