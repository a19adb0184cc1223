package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestIsAny(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		targets []error
		want    bool
	}{
		{name: "no targets", err: errSentinel},
		{name: "direct match", err: errSentinel, targets: []error{context.Canceled, errSentinel}, want: true},
		{name: "wrapped match", err: Wrap(errSentinel, "load"), targets: []error{errSentinel}, want: true},
		{name: "no match", err: context.DeadlineExceeded, targets: []error{context.Canceled, errSentinel}},
		{name: "nil error", targets: []error{errSentinel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAny(tt.err, tt.targets...))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))

	err := Wrapf(errSentinel, "prize %d", 7)
	assert.EqualError(t, err, "prize 7: sentinel")
	assert.True(t, Is(err, errSentinel))
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap")
}

func TestJoin(t *testing.T) {
	assert.NoError(t, Join(nil, nil))

	err := Join(errSentinel, context.Canceled)
	assert.True(t, Is(err, errSentinel))
	assert.True(t, Is(err, context.Canceled))
}
