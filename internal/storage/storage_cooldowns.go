package storage

// Cooldowns returns the sparse cooldown table keyed by canonical sound name.
func (s *Storage) Cooldowns() (map[string]Cooldown, error) {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return nil, err
	}
	return record.Cooldowns, nil
}

// UpdateCooldowns applies fn to the current table and stores the result,
// a single read-modify-write so concurrent fields of one sound never
// clobber each other.
func (s *Storage) UpdateCooldowns(fn func(map[string]Cooldown) map[string]Cooldown) error {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return err
	}
	record.Cooldowns = fn(record.Cooldowns)
	s.save(record)
	return nil
}
