package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/katalvlaran/pathfind/scenario"
)

const demo = `
width: 10
height: 10
walls:
  - {x1: 1, y1: 7, x2: 4, y2: 9}
forests: [[3, 4], [3, 5]]
forest_cost: 7
start: [1, 4]
goal: [8, 3]
`

func TestParse(t *testing.T) {
	s, err := scenario.Parse([]byte(demo))
	require.NoError(t, err)

	assert.Equal(t, 10, s.Width)
	assert.Equal(t, []scenario.Rect{{X1: 1, Y1: 7, X2: 4, Y2: 9}}, s.Walls)
	assert.Equal(t, []scenario.Point{{3, 4}, {3, 5}}, s.Forests)
	assert.Equal(t, gridgraph.Location{X: 1, Y: 4}, s.Start.Location())
	assert.Equal(t, gridgraph.Location{X: 8, Y: 3}, s.Goal.Location())

	g, err := s.Build()
	require.NoError(t, err)
	assert.Len(t, g.Walls(), 6)
	assert.True(t, g.IsForest(gridgraph.Location{X: 3, Y: 5}))
	assert.Equal(t, 7.0, g.Cost(gridgraph.Location{X: 2, Y: 4}, gridgraph.Location{X: 3, Y: 4}))
}

func TestParse_DefaultForestCost(t *testing.T) {
	s, err := scenario.Parse([]byte("width: 2\nheight: 1\nforests: [[1, 0]]\nstart: [0, 0]\ngoal: [1, 0]\n"))
	require.NoError(t, err)
	g, err := s.Build()
	require.NoError(t, err)
	assert.Nil(t, s.ForestCost)
	assert.Equal(t, gridgraph.ForestCost, g.ForestCost)
}

func TestParse_ZeroForestCostIsKept(t *testing.T) {
	s, err := scenario.Parse([]byte("width: 2\nheight: 1\nforests: [[1, 0]]\nforest_cost: 0\nstart: [0, 0]\ngoal: [1, 0]\n"))
	require.NoError(t, err)
	require.NotNil(t, s.ForestCost)

	g, err := s.Build()
	require.NoError(t, err)
	assert.Zero(t, g.ForestCost)
	assert.Zero(t, g.Cost(gridgraph.Location{X: 0, Y: 0}, gridgraph.Location{X: 1, Y: 0}))

	// an explicit zero survives a round trip
	data, err := s.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "forest_cost: 0")
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"Empty":          ``,
		"NotYAML":        `width: [`,
		"UnknownKey":     "width: 3\nheight: 3\nlava: true\n",
		"ZeroSize":       "width: 0\nheight: 3\n",
		"NegativeCost":   "width: 3\nheight: 3\nforest_cost: -1\n",
		"NaNCost":        "width: 3\nheight: 3\nforest_cost: .nan\n",
		"InvertedWall":   "width: 3\nheight: 3\nwalls: [{x1: 2, y1: 0, x2: 1, y2: 1}]\n",
		"ForestOutside":  "width: 3\nheight: 3\nforests: [[3, 0]]\n",
		"StartOutside":   "width: 3\nheight: 3\nstart: [0, 5]\n",
		"GoalInWall":     "width: 3\nheight: 3\nwalls: [{x1: 1, y1: 1, x2: 3, y2: 3}]\ngoal: [2, 2]\n",
		"ShortPoint":     "width: 3\nheight: 3\nstart: [1]\n",
		"WrongFieldType": "width: wide\nheight: 3\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(doc))
			require.ErrorIs(t, err, scenario.ErrInvalidScenario)
		})
	}
}

func TestDefault_IsDiagram4(t *testing.T) {
	s := scenario.Default()
	require.NoError(t, s.Validate())

	g, err := s.Build()
	require.NoError(t, err)
	want := gridgraph.Diagram4()
	assert.Equal(t, want.Walls(), g.Walls())
	assert.Equal(t, want.Forests(), g.Forests())
	assert.Equal(t, want.ForestCost, g.ForestCost)
}

func TestYAML_RoundTrip(t *testing.T) {
	s := scenario.Default()
	data, err := s.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "start: [1, 4]")

	back, err := scenario.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(file, []byte(demo), 0o600))

	s, err := scenario.Load(file)
	require.NoError(t, err)
	require.NotNil(t, s.ForestCost)
	assert.Equal(t, 7.0, *s.ForestCost)

	_, err = scenario.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: -1\nheight: 1\n"), 0o600))
	_, err = scenario.Load(bad)
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)
	assert.Contains(t, err.Error(), bad)
}
