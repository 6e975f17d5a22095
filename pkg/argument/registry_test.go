package argument

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/argon/pkg/annotation"
)

func TestRegistryLookupByShape(t *testing.T) {
	r := NewRegistry[string]()
	require.NoError(t, r.Register(Of(repoType, "repo", Of(userType, "T"), Of(intType, "ID")), "user-repo"))
	require.NoError(t, r.Register(Of(repoType, "repo", Of(stringType, "T")), "string-repo"))

	got, ok := r.Lookup(Of(repoType, "request", Of(intType, "K"), Of(userType, "V")))
	require.True(t, ok)
	assert.Equal(t, "user-repo", got)

	_, ok = r.Lookup(Of(repoType, "request"))
	assert.False(t, ok)

	_, ok = r.Lookup(nil)
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())
}

func TestRegistryDuplicates(t *testing.T) {
	r := NewRegistry[int]()
	require.NoError(t, r.Register(Of(userType, "a"), 1))

	err := r.Register(Of(userType, "b"), 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))

	require.NoError(t, r.Register(Qualified(userType, "c", annotation.Of("named", "value", "admin")), 3))
	assert.Error(t, r.Register(nil, 4))
}

func TestRegistryQualifiedLookup(t *testing.T) {
	admin := annotation.Of("named", "value", "admin")
	r := NewRegistry[string]()
	require.NoError(t, r.Register(Of(userType, "u"), "default"))
	require.NoError(t, r.Register(Qualified(userType, "u", admin), "admin"))

	got, ok := r.LookupQualified(Qualified(userType, "x", annotation.Of("named", "value", "admin")))
	require.True(t, ok)
	assert.Equal(t, "admin", got)

	got, ok = r.LookupQualified(Of(userType, "x"))
	require.True(t, ok)
	assert.Equal(t, "default", got)

	_, ok = r.LookupQualified(Qualified(userType, "x", annotation.Of("named", "value", "guest")))
	assert.False(t, ok)

	got, _ = r.Lookup(Qualified(userType, "x", annotation.Of("named", "value", "guest")))
	assert.Equal(t, "default", got)
}

func TestRegistryKeysOrder(t *testing.T) {
	r := NewRegistry[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Register(Of(TypeOf("example.com/p", fmt.Sprintf("T%d", i)), "v"), i))
	}

	keys := r.Keys()
	require.Len(t, keys, 5)
	for i, k := range keys {
		assert.Equal(t, fmt.Sprintf("T%d", i), k.Type().Name)
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := Of(TypeOf("example.com/p", fmt.Sprintf("T%d", i)), "v")
			assert.NoError(t, r.Register(key, i))
			got, ok := r.Lookup(key)
			assert.True(t, ok)
			assert.Equal(t, i, got)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, r.Len())
}
