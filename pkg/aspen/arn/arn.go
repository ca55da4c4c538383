// Package arn parses and compares AWS Resource Names, the six
// colon-delimited field format Aspen resource patterns match against.
//
// This is the reference implementation of the "ARN utility" external
// collaborator contract from the policy engine's design: a host service
// is free to supply its own ARNResolver and ignore this package.
package arn

import (
	"fmt"
	"strings"
)

const fieldCount = 6

// ARN is a parsed Amazon Resource Name:
// arn:partition:service:region:account-id:resource.
type ARN struct {
	Partition string
	Service   string
	Region    string
	AccountID string
	Resource  string
}

// Parse splits s into its six colon-delimited fields. It does not validate
// the partition/service/region vocabularies — Aspen's pattern matching
// operates on the raw field strings regardless of whether they name a
// real AWS service.
func Parse(s string) (ARN, error) {
	fields := strings.SplitN(s, ":", fieldCount)
	if len(fields) != fieldCount || fields[0] != "arn" {
		return ARN{}, fmt.Errorf("arn: %q is not a valid ARN (want 6 colon-delimited fields starting with \"arn\")", s)
	}
	return ARN{
		Partition: fields[1],
		Service:   fields[2],
		Region:    fields[3],
		AccountID: fields[4],
		Resource:  fields[5],
	}, nil
}

// String renders the ARN back to its canonical colon-delimited form.
func (a ARN) String() string {
	return strings.Join([]string{"arn", a.Partition, a.Service, a.Region, a.AccountID, a.Resource}, ":")
}

// Equal reports segment-aware equality: every field must match exactly.
// Wildcard-aware equality belongs to the pattern package (MatchesARN),
// which the ARN condition operators (ArnEquals included) use; this is a
// plain structural comparison.
func (a ARN) Equal(other ARN) bool {
	return a == other
}

// DefaultResolver adapts Parse/Equal to the engine's ARNResolver contract.
type DefaultResolver struct{}

func (DefaultResolver) Parse(s string) (ARN, error) { return Parse(s) }

func (DefaultResolver) Equal(a, b ARN) bool { return a.Equal(b) }
