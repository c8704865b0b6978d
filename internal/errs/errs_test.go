package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "typed", err: Conflictf("sudah diterima"), want: StateConflict},
		{name: "wrapped twice", err: fmt.Errorf("usecase: %w", Invalidf("catatan wajib diisi")), want: InvalidArgument},
		{name: "plain error", err: fmt.Errorf("boom"), want: Internal},
		{name: "nil", err: nil, want: Internal},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, HTTPStatus(NotFound))
	assert.Equal(t, 403, HTTPStatus(Unauthorized))
	assert.Equal(t, 409, HTTPStatus(StateConflict))
	assert.Equal(t, 400, HTTPStatus(InvalidArgument))
	assert.Equal(t, 502, HTTPStatus(UpstreamFailure))
	assert.Equal(t, 500, HTTPStatus(Internal))
}

func TestMessage(t *testing.T) {
	cause := fmt.Errorf("dial tcp: timeout")
	err := Upstream("penyimpanan lampiran tidak tersedia", cause)

	assert.Equal(t, "penyimpanan lampiran tidak tersedia", Message(err, "x"))
	assert.Equal(t, "x", Message(cause, "x"))
	assert.ErrorIs(t, err, cause)
}
