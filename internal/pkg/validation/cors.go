package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ValidateCORSOrigin checks that origin follows the Scheme://Host[:Port]
// form browsers send in the Origin header. The wildcard "*" is accepted;
// paths, query strings, fragments and user credentials are not.
func ValidateCORSOrigin(origin string) error {
	trimmed := strings.TrimSpace(origin)
	if trimmed == "*" {
		return nil
	}
	if trimmed == "" {
		return fmt.Errorf("CORS origin must not be empty")
	}
	if strings.HasSuffix(trimmed, "/") {
		return fmt.Errorf("CORS origin must not end with a path separator (input=%q)", trimmed)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("CORS origin is not a valid URL (input=%q): %w", trimmed, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("CORS origin scheme must be http or https (input=%q)", trimmed)
	}
	if parsed.Path != "" && parsed.Path != "/" {
		return fmt.Errorf("CORS origin must not contain a path (input=%q)", trimmed)
	}
	if parsed.RawQuery != "" {
		return fmt.Errorf("CORS origin must not contain a query string (input=%q)", trimmed)
	}
	if parsed.Fragment != "" {
		return fmt.Errorf("CORS origin must not contain a fragment (input=%q)", trimmed)
	}
	if parsed.User != nil {
		return fmt.Errorf("CORS origin must not contain user credentials (input=%q)", trimmed)
	}

	if portStr := parsed.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("CORS origin port is not a number (input=%q, port=%s)", trimmed, portStr)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS origin port: %w (input=%q)", err, trimmed)
		}
	}

	host := parsed.Hostname()
	if host == "" {
		return fmt.Errorf("CORS origin is missing a host (input=%q)", trimmed)
	}
	if err := ValidateHostname(host); err != nil {
		return fmt.Errorf("CORS origin host: %w", err)
	}
	return nil
}

// ValidatePort checks the 1-65535 range.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port outside the valid range 1-65535 (port=%d)", port)
	}
	return nil
}

// ValidateHostname accepts localhost, IP literals and RFC 1123 domain
// names (253 chars total, 63 per label, alphanumerics and hyphens, no
// all-numeric TLD).
func ValidateHostname(host string) error {
	if host == "localhost" {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("hostname longer than 253 characters (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if len(label) == 0 {
			return fmt.Errorf("hostname contains an empty label (host=%q)", host)
		}
		if len(label) > 63 {
			return fmt.Errorf("hostname label longer than 63 characters (label=%q)", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("hostname label must not start or end with a hyphen (label=%q)", label)
		}
		for _, r := range label {
			valid := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
			if !valid {
				return fmt.Errorf("hostname contains an invalid character (char=%q, host=%q)", r, host)
			}
		}
	}

	// RFC 1123: the TLD cannot be all digits, that would be an IP.
	last := labels[len(labels)-1]
	allNumeric := true
	for _, r := range last {
		if r < '0' || r > '9' {
			allNumeric = false
			break
		}
	}
	if allNumeric {
		return fmt.Errorf("top-level domain must not be all-numeric (tld=%q)", last)
	}
	return nil
}
