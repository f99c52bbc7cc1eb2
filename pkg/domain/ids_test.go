package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/kith-app/kith/pkg/domain-errors"
)

func TestParseUserID(t *testing.T) {
	valid := uuid.NewString()

	id, err := ParseUserID(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, id.String())
	assert.False(t, id.IsNil())
}

func TestParseUserID_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"malformed", "not-a-uuid"},
		{"nil uuid", uuid.Nil.String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUserID(tt.input)
			require.Error(t, err)
			assert.True(t, derrors.HasCode(err, derrors.CodeInvalidInput))
		})
	}
}

func TestNewUserID_Unique(t *testing.T) {
	assert.NotEqual(t, NewUserID(), NewUserID())
	assert.True(t, NilUserID.IsNil())
}

func FuzzParseUserID(f *testing.F) {
	f.Add(uuid.NewString())
	f.Add("")
	f.Add("not-a-uuid")
	f.Add(uuid.Nil.String())

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseUserID(input)
		if err != nil {
			assert.True(t, id.IsNil(), "failed parses return the nil ID")
			return
		}
		// A successful parse round-trips and is never the nil UUID.
		assert.False(t, id.IsNil())
		reparsed, err := ParseUserID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, reparsed)
	})
}
