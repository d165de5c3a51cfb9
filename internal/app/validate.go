package app

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// minPasswordLen matches the backend's registration rule.
const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateEmail performs the basic shape check done before any request.
func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("alamat email %q tidak valid", email)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password minimal %d karakter", minPasswordLen)
	}
	return nil
}

// parseAmount parses a required non-negative decimal input.
func parseAmount(field, value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("%s wajib diisi", field)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s harus berupa angka", field)
	}
	if d.Sign() < 0 {
		return decimal.Zero, fmt.Errorf("%s tidak boleh negatif", field)
	}
	return d, nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s wajib diisi", field)
	}
	return nil
}
