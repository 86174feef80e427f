package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lintang-b-s/modalroute/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MODALROUTE_NETWORK", "")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCitiesCommand(t *testing.T) {
	out, err := run(t, "", "cities")
	require.NoError(t, err)
	assert.Equal(t, "0: City A\n1: City B\n2: City C\n3: City D\n4: City E\n", out)
}

func TestRoutesCommand(t *testing.T) {
	out, err := run(t, "", "routes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "City A to City B - Distance: 100 km, Train - Cost: $50", lines[0])
	assert.Equal(t, "City B to City C - Distance: 130 km, Car - Cost: $90", lines[4])
	assert.Equal(t, "City D to City E - Distance: 90 km, Airplane - Cost: $200", lines[11])
}

func TestPathCommandWithFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			"train A to E",
			[]string{"path", "--from", "0", "--to", "4", "--mode", "train"},
			"Shortest path from City A to City E using train:\nCity A -> City B -> City C -> City D -> City E\nTotal cost: $270\n",
		},
		{
			"airplane by index",
			[]string{"path", "-f", "4", "-t", "0", "-m", "2"},
			"Shortest path from City E to City A using airplane:\nCity E -> City D -> City C -> City B -> City A\nTotal cost: $950\n",
		},
		{
			"same city",
			[]string{"path", "--from", "3", "--to", "3", "--mode", "car"},
			"Shortest path from City D to City D using car:\nCity D\nTotal cost: $0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPathCommandPrompts(t *testing.T) {
	out, err := run(t, "1\n3\n1\n", "path")
	require.NoError(t, err)
	assert.Equal(t, "Select source city (0-4): Select destination city (0-4): "+
		"Select transportation mode:\n0. Train\n1. Car\n2. Airplane\n"+
		"Shortest path from City B to City D using car:\nCity B -> City C -> City D\nTotal cost: $210\n", out)

	// only the missing value is asked for
	out, err = run(t, "train\n", "path", "--from", "0", "--to", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Total cost: $50\n"))
	assert.NotContains(t, out, "Select source city")
}

func TestPathCommandInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"city out of range", "", []string{"path", "--from", "0", "--to", "5", "--mode", "train"}},
		{"negative city", "", []string{"path", "--from", "-1", "--to", "2", "--mode", "car"}},
		{"mode out of range", "", []string{"path", "--from", "0", "--to", "2", "--mode", "3"}},
		{"not a number", "abc\n2\n0\n", []string{"path"}},
		{"stdin closed", "0\n", []string{"path"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			assert.ErrorIs(t, err, errInvalidInput)
			assert.True(t, strings.HasSuffix(out, "Invalid input. Exiting...\n"))
		})
	}
}

func TestRootCommandInteractive(t *testing.T) {
	out, err := run(t, "0\n4\n0\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Cities:\n0: City A\n"))
	assert.Contains(t, out, "\nRoutes:\nCity A to City B - Distance: 100 km, Train - Cost: $50\n")
	assert.True(t, strings.HasSuffix(out, "City A -> City B -> City C -> City D -> City E\nTotal cost: $270\n"))
}

func TestPathCommandNoPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "islands.json")
	def := network.Definition{
		Cities: []network.CityDefinition{{ID: 0, Name: "Left"}, {ID: 1, Name: "Right"}},
		Routes: []network.RouteDefinition{{From: 0, To: 1, Mode: "car", Distance: 5, Cost: 5}},
	}
	require.NoError(t, network.WriteDefinition(path, def))

	out, err := run(t, "", "--network", path, "path", "--from", "0", "--to", "1", "--mode", "train")
	require.NoError(t, err)
	assert.Equal(t, "No path found from city Left to city Right\n", out)
}
