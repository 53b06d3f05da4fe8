package storage

import "soundbored/internal/permissions"

// UserRole returns the stored role for name, or User for anyone the
// channel has never assigned a role.
func (s *Storage) UserRole(name string) (permissions.Role, error) {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return permissions.None, err
	}
	role, ok := record.Users[name]
	if !ok {
		return permissions.User, nil
	}
	return role, nil
}

func (s *Storage) SetUserRole(name string, role permissions.Role) error {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return err
	}
	record.Users[name] = role
	s.save(record)
	return nil
}

func (s *Storage) Users() (map[string]permissions.Role, error) {
	record, err := s.getOrCreateRecord()
	if err != nil {
		return nil, err
	}
	return record.Users, nil
}
