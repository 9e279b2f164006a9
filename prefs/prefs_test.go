package prefs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems map[string][]byte

func (m memItems) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memItems) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

type brokenItems struct{}

func (brokenItems) LoadItem(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (brokenItems) SaveItem(string, []byte) error   { return errors.New("disk gone") }

func TestRoundTrip(t *testing.T) {
	s := &Store{items: memItems{}}

	got, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "nothing saved yet")

	require.NoError(t, s.Save(Settings{Scale: 2, Fullscreen: true}))

	got, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, &Settings{Scale: 2, Fullscreen: true}, got)
}

func TestCorruptSettings(t *testing.T) {
	s := &Store{items: memItems{settingsKey: []byte("{")}}

	_, err := s.Load()
	assert.ErrorContains(t, err, "parse preferences")
}

func TestBackendErrors(t *testing.T) {
	s := &Store{items: brokenItems{}}

	_, err := s.Load()
	assert.ErrorContains(t, err, "disk gone")
	assert.ErrorContains(t, s.Save(Settings{}), "disk gone")
}

func TestNoBackend(t *testing.T) {
	var nilStore *Store
	for _, s := range []*Store{{}, nilStore} {
		got, err := s.Load()
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, s.Save(Settings{Scale: 3}))
	}
}
