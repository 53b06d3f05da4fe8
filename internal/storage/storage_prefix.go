package storage

// Prefix returns the current command prefix. It is read from the record
// on every call so a prefix change applies to the very next message.
func (s *Storage) Prefix() (string, error) {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return "", err
	}
	return record.Prefix, nil
}

func (s *Storage) SetPrefix(prefix string) error {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return err
	}
	record.Prefix = prefix
	s.save(record)
	return nil
}
