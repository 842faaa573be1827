package token

// ScanBoolean scans the keyword `true` or `false`, s positioned at the
// first byte. The caller must already know one of the two keywords is
// present (e.g. via HasPrefix) before calling.
func (s *Scanner) ScanBoolean() (bool, error) {
	switch {
	case s.HasPrefix("true"):
		s.AdvanceN(4)
		return true, nil
	case s.HasPrefix("false"):
		s.AdvanceN(5)
		return false, nil
	default:
		return false, NewErr(ErrUnexpectedToken, s.Pos(), "expected true or false")
	}
}
