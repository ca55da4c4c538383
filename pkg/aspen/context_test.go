package aspen

import (
	"net"
	"testing"
	"time"

	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/arn"
	"github.com/stretchr/testify/assert"
)

func TestContextWithHelpers(t *testing.T) {
	ctx := NewContext()
	ctx.WithString("aws:username", "alice")
	ctx.WithNumber("custom:score", 42.5)
	ctx.WithBool("custom:active", true)
	ctx.WithDate("aws:CurrentTime", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx.WithIP("aws:SourceIp", net.ParseIP("203.0.113.5"))
	ctx.WithBinary("custom:blob", []byte("hello"))
	ctx.WithARN("custom:arn", arn.ARN{Partition: "aws", Service: "s3", Resource: "bucket/key"})

	values, ok := ctx.Get("aws:username")
	assert.True(t, ok)
	assert.Equal(t, []string{"alice"}, values)

	values, ok = ctx.Get("custom:score")
	assert.True(t, ok)
	assert.Equal(t, []string{"42.5"}, values)

	values, ok = ctx.Get("custom:active")
	assert.True(t, ok)
	assert.Equal(t, []string{"true"}, values)

	values, ok = ctx.Get("aws:CurrentTime")
	assert.True(t, ok)
	assert.Equal(t, []string{"2026-01-01T00:00:00Z"}, values)

	values, ok = ctx.Get("custom:blob")
	assert.True(t, ok)
	assert.Equal(t, []string{"aGVsbG8="}, values)
}

func TestContextMergeSetUnion(t *testing.T) {
	a := NewContext().WithString("key", "x").WithString("key", "y")
	b := NewContext().WithString("key", "y").WithString("key", "z")

	merged := a.Merge(b)
	values, _ := merged.Get("key")
	assert.ElementsMatch(t, []string{"x", "y", "z"}, values)
}

func TestContextGetMissingKey(t *testing.T) {
	ctx := NewContext()
	_, ok := ctx.Get("missing")
	assert.False(t, ok)
}
