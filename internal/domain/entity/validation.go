package entity

// ValidateID checks that an identifier is a positive integer.
// Returns a ValidationError naming the field otherwise.
func ValidateID(field string, id int64) error {
	if id <= 0 {
		return &ValidationError{Field: field, Message: "must be positive"}
	}
	return nil
}

// ValidateIDs validates several identifiers and returns the first failure.
// fields[i] names ids[i]; unnamed ids are reported as "id".
func ValidateIDs(fields []string, ids ...int64) error {
	for i, id := range ids {
		field := "id"
		if i < len(fields) {
			field = fields[i]
		}
		if err := ValidateID(field, id); err != nil {
			return err
		}
	}
	return nil
}
