package storage

// defaultPrefs is the full preference shape. Keys outside this map never
// reach storage.
var defaultPrefs = map[string]bool{
	"tts":    true,
	"sounds": true,
}

// KnownPref reports whether key is part of the preference shape.
func KnownPref(key string) bool {
	_, ok := defaultPrefs[key]
	return ok
}

// Pref returns the stored value for key, falling back to its default.
func (s *Storage) Pref(key string) (bool, error) {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return false, err
	}
	if value, ok := record.Prefs[key]; ok {
		return value, nil
	}
	return defaultPrefs[key], nil
}

// Prefs returns every preference with stored values overlaid on defaults.
func (s *Storage) Prefs() (map[string]bool, error) {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return nil, err
	}
	merged := make(map[string]bool, len(defaultPrefs))
	for key, value := range defaultPrefs {
		merged[key] = value
	}
	for key, value := range record.Prefs {
		if KnownPref(key) {
			merged[key] = value
		}
	}
	return merged, nil
}

func (s *Storage) SetPref(key string, value bool) error {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return err
	}
	record.Prefs[key] = value
	s.save(record)
	return nil
}
