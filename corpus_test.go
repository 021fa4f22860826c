package cron

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type corpusCase struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
	Ref  int64  `yaml:"ref"`
	Want int64  `yaml:"want"`
}

type corpus struct {
	Cases []corpusCase `yaml:"cases"`
}

// TestNextCorpus runs the bulk expression corpus in testdata. Each case
// is also re-run with the reference shifted into a non-UTC location to
// check that results are computed in, and returned in, the reference's
// own location.
func TestNextCorpus(t *testing.T) {
	raw, err := os.ReadFile("testdata/next_cases.yaml")
	require.NoError(t, err)

	var c corpus
	require.NoError(t, yaml.Unmarshal(raw, &c))
	require.NotEmpty(t, c.Cases)

	fixed := time.FixedZone("UTC-8", -8*60*60)

	for _, tc := range c.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			ref := time.Unix(tc.Ref, 0).UTC()
			next, err := Next(tc.Expr, ref)
			require.NoError(t, err)
			assert.Equal(t, time.Unix(tc.Want, 0).UTC(), next)

			// Same civil reference in a fixed non-UTC zone: the civil
			// result fields are identical, the absolute time shifts
			// with the zone.
			shifted := time.Date(ref.Year(), ref.Month(), ref.Day(),
				ref.Hour(), ref.Minute(), ref.Second(), 0, fixed)
			nextShifted, err := Next(tc.Expr, shifted)
			require.NoError(t, err)
			assert.Equal(t, fixed, nextShifted.Location())

			want := time.Unix(tc.Want, 0).UTC()
			assert.Equal(t,
				time.Date(want.Year(), want.Month(), want.Day(), want.Hour(), want.Minute(), 0, 0, fixed),
				nextShifted)
		})
	}
}
