package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string    `json:"name"`
	Cost float64   `json:"cost"`
	IDs  []int     `json:"ids"`
	Tags [2]string `json:"tags"`
}

func TestCodecs(t *testing.T) {
	in := sample{Name: "best", Cost: 28.28, IDs: []int{0, 1, 2}, Tags: [2]string{"a", "b"}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out sample
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestMustMarshalDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		b := MustMarshal(nil, map[string]int{"k": 3})
		assert.NotEmpty(t, b)
	})
}
