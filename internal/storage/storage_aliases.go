package storage

// Aliases returns the alias table, lowercase alias to canonical sound name.
func (s *Storage) Aliases() (map[string]string, error) {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return nil, err
	}
	return record.Aliases, nil
}

func (s *Storage) SetAlias(alias, target string) error {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return err
	}
	record.Aliases[alias] = target
	s.save(record)
	return nil
}

// RemoveAlias deletes alias and reports whether it existed.
func (s *Storage) RemoveAlias(alias string) (bool, error) {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return false, err
	}
	if _, ok := record.Aliases[alias]; !ok {
		return false, nil
	}
	delete(record.Aliases, alias)
	s.save(record)
	return true, nil
}
