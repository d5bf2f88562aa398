package n64

// MarshalText uses the decimal form.
func (n N64) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText reads a decimal string with n's existing tag. Out-of-range
// input wraps, as with U64FromString.
func (n *N64) UnmarshalText(bts []byte) (err error) {
	v, _, err := parse(string(bts), 10, n.signed)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalJSON emits a quoted hex string without a '0x' prefix. Negative
// values keep their '-'.
func (n N64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.format(16) + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare hex string, read with n's existing
// tag.
func (n *N64) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return newError("unmarshaljson", "", string(bts), ErrMalformedString)
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := parse(string(bts), 16, n.signed)
	if err != nil {
		return err
	}
	*n = v
	return nil
}
