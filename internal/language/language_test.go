package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-site/internal/storage"
)

func TestNext_CyclesAndWraps(t *testing.T) {
	assert.Equal(t, Korean, Next(English))
	assert.Equal(t, English, Next(Korean))
}

func TestNext_IsItsOwnInverse(t *testing.T) {
	for _, lang := range Supported {
		assert.Equal(t, lang, Next(Next(lang)))
	}
}

func TestNormalize_InvalidFallsBack(t *testing.T) {
	assert.Equal(t, Default, Normalize("fr"))
	assert.Equal(t, Korean, Normalize(Korean))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(English))
	assert.True(t, IsValid(Korean))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("jp"))
}

func TestPreference_DefaultWhenUnset(t *testing.T) {
	p := NewPreference(storage.NewMemStore())
	assert.Equal(t, Default, p.Current())
}

func TestPreference_SetAndCurrent(t *testing.T) {
	p := NewPreference(storage.NewMemStore())

	got, err := p.Set(Korean)
	require.NoError(t, err)
	assert.Equal(t, Korean, got)
	assert.Equal(t, Korean, p.Current())
}

func TestPreference_SetInvalidNormalizes(t *testing.T) {
	p := NewPreference(storage.NewMemStore())

	got, err := p.Set("jp")
	require.NoError(t, err)
	assert.Equal(t, Default, got)
	assert.Equal(t, Default, p.Current())
}

func TestPreference_InvalidStoredValueFallsBack(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Set(PreferenceKey, "zz"))

	p := NewPreference(store)
	assert.Equal(t, Default, p.Current())
}

func TestPreference_Toggle(t *testing.T) {
	p := NewPreference(storage.NewMemStore())

	prev, next, err := p.Toggle()
	require.NoError(t, err)
	assert.Equal(t, English, prev)
	assert.Equal(t, Korean, next)
	assert.NotEqual(t, prev, next)

	prev, next, err = p.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Korean, prev)
	assert.Equal(t, English, next)
}

func TestPreference_StorageFailureDegrades(t *testing.T) {
	store := storage.NewMemStore()
	store.FailReads = true

	p := NewPreference(store)
	assert.Equal(t, Default, p.Current())

	store.FailReads = false
	store.FailWrites = true
	_, err := p.Set(Korean)
	assert.Error(t, err)
}
