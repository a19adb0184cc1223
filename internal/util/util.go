// Package util holds small formatting helpers shared by the API and the CLI.
package util

import (
	"fmt"
	"strings"
)

// FormatBytes renders a size in binary units, e.g. "10.0 MB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	const units = "KMGT"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// MaskEmail keeps the first character of the local part and the domain: "m***@example.com".
func MaskEmail(email string) string {
	local, domain, found := strings.Cut(strings.TrimSpace(email), "@")
	if !found || local == "" {
		return "***"
	}

	return local[:1] + "***@" + domain
}

// MaskCPF keeps the last two digits of a CPF: "*********01".
func MaskCPF(cpf string) string {
	if len(cpf) <= 2 {
		return strings.Repeat("*", len(cpf))
	}

	return strings.Repeat("*", len(cpf)-2) + cpf[len(cpf)-2:]
}
