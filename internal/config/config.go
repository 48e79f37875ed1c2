package config

import (
	"errors"
	"fmt"
)

// ErrInvalidCredential is wrapped by every credential validation failure.
var ErrInvalidCredential = errors.New("invalid credential")

// Credentials are the caller-supplied identity mixed into the hardware string
// and used as the derivation salt.
type Credentials struct {
	Username string
	Passkey  string
}

// Salt returns username‖passkey, the PBKDF2 salt.
func (c Credentials) Salt() []byte {
	return []byte(c.Username + c.Passkey)
}

type Config struct {
	Credentials
	Pipeline string // fingerprint pipeline version, "v2" unless overridden
	Verbose  bool
	Version  string // set from ldflags at build time; empty in dev builds
}

// Validate checks both credentials. Fails fast on the first error.
func (c *Config) Validate() error {
	if err := ValidateCredential("username", c.Username); err != nil {
		return err
	}
	if err := ValidateCredential("passkey", c.Passkey); err != nil {
		return err
	}
	return nil
}

// ValidateCredential accepts raw iff it is non-empty and every byte is an ASCII
// letter or digit. name is only used in the error message.
func ValidateCredential(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidCredential, name)
	}
	for i := 0; i < len(raw); i++ {
		if !isAlphanumeric(raw[i]) {
			return fmt.Errorf("%w: %s must contain only letters and digits (bad character at position %d)",
				ErrInvalidCredential, name, i+1)
		}
	}
	return nil
}

func isAlphanumeric(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
