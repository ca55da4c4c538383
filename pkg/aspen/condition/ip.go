package condition

import (
	"net"
	"strings"
)

// ipInCIDR reports whether value (a single request IP) falls within
// operand (a CIDR, or a bare IP treated as an exact match). A malformed
// value or operand degrades the comparison to false.
func ipInCIDR(value, operand string) bool {
	ip := net.ParseIP(value)
	if ip == nil {
		return false
	}

	if !strings.Contains(operand, "/") {
		other := net.ParseIP(operand)
		return other != nil && ip.Equal(other)
	}

	_, network, err := net.ParseCIDR(operand)
	if err != nil {
		return false
	}
	return network.Contains(ip)
}

// validIPOrCIDR reports whether s parses as a bare IP literal or a CIDR,
// the value space IpAddress/NotIpAddress operands construct against.
func validIPOrCIDR(s string) bool {
	if net.ParseIP(s) != nil {
		return true
	}
	_, _, err := net.ParseCIDR(s)
	return err == nil
}
