package argument

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/argon/pkg/annotation"
)

func TestShapeConstructors(t *testing.T) {
	user := Of(userType, "user")

	tests := []struct {
		name string
		got  Argument
		want Argument
	}{
		{"slice", Slice("users", user), Of(SliceType, "x", Of(userType, ElemVar))},
		{"pointer", Pointer("u", user), Of(PointerType, "x", Of(userType, PointVar))},
		{"chan", Chan("c", Of(intType, "n")), Of(ChanType, "x", Of(intType, PointVar))},
		{"map", Map("m", Of(stringType, "k"), Slice("v", user)), Of(MapType, "x", Of(stringType, KeyVar), Of(SliceType, ValueVar, Of(userType, ElemVar)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.got.Equal(tt.want))
			assert.Equal(t, Format(tt.want), Format(tt.got))
		})
	}

	elem, ok := Map("m", Of(stringType, "k"), user).TypeVariables().Get(ValueVar)
	require.True(t, ok)
	assert.Equal(t, ValueVar, elem.Name())
}

func TestRenameKeepsFacts(t *testing.T) {
	qualifier := annotation.Of("named", "value", "primary")
	original := New(userType, "user", qualifier, []annotation.Annotation{annotation.Of("pool")}, Of(intType, "ID"))

	renamed := Rename(original, "other")

	assert.Equal(t, "other", renamed.Name())
	assert.True(t, renamed.Equal(original))
	assert.Equal(t, original.Hash(), renamed.Hash())
	assert.Equal(t, qualifier, renamed.Qualifier())
	_, ok := renamed.AnnotatedElements()[0].Annotation("pool")
	assert.True(t, ok)
	assert.Equal(t, []string{"ID"}, renamed.TypeVariables().Names())

	assert.Panics(t, func() { Rename(nil, "x") })
}
