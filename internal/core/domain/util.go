package domain

// zeroBytes overwrites b with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// isASCIIText reports whether b is non-empty printable ASCII, the only
// valid encoding for a decrypted mnemonic.
func isASCIIText(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
