// Package storage persists everything the soundboard owns per channel:
// users and their roles, sound aliases, cooldowns, preferences, and the
// command prefix. It is a typed facade over the datastore's JSON file,
// one Record per channel key.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/keshon/datastore"

	"soundbored/internal/permissions"
)

// Cooldown is the per-sound pair of advisory windows, in milliseconds.
// A sound is present in the cooldown table only while at least one of
// the two fields is nonzero.
type Cooldown struct {
	PerUser  int64 `json:"per_user_ms"`
	PerSound int64 `json:"per_sound_ms"`
}

type Record struct {
	Users     map[string]permissions.Role `json:"users"`
	Aliases   map[string]string           `json:"aliases"`
	Cooldowns map[string]Cooldown         `json:"cooldowns"`
	Prefs     map[string]bool             `json:"prefs"`
	Prefix    string                      `json:"prefix"`
}

type Storage struct {
	ds            *datastore.DataStore
	channel       string
	defaultPrefix string
}

// New opens (or creates) the backing file and binds the storage to one
// channel. A fresh channel record seeds the channel's own name as its
// Streamer-role user.
func New(filePath, channel, defaultPrefix string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds, channel: channel, defaultPrefix: defaultPrefix}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

func (s *Storage) Channel() string {
	return s.channel
}

func (s *Storage) getOrCreateRecord() (*Record, error) {
	data, exists := s.ds.Get(s.channel)
	if !exists {
		record := &Record{
			Users:     map[string]permissions.Role{s.channel: permissions.Streamer},
			Aliases:   map[string]string{},
			Cooldowns: map[string]Cooldown{},
			Prefs:     map[string]bool{},
			Prefix:    s.defaultPrefix,
		}
		s.ds.Add(s.channel, record)
		return record, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	if record.Users == nil {
		record.Users = map[string]permissions.Role{}
	}
	if record.Aliases == nil {
		record.Aliases = map[string]string{}
	}
	if record.Cooldowns == nil {
		record.Cooldowns = map[string]Cooldown{}
	}
	if record.Prefs == nil {
		record.Prefs = map[string]bool{}
	}
	if record.Prefix == "" {
		record.Prefix = s.defaultPrefix
	}

	return &record, nil
}

func (s *Storage) save(record *Record) {
	s.ds.Add(s.channel, record)
}
