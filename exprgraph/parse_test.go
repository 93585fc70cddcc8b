package exprgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventlabs/solvent/exprgraph"
	"github.com/solventlabs/solvent/parsec"
)

// TestParseGraph_Basic parses both node forms.
func TestParseGraph_Basic(t *testing.T) {
	g, err := exprgraph.ParseGraph("root: a + b\na: 2\nb: 3\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())

	v, err := g.Value("root")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
}

// TestParseGraph_NegativeLiteral: signed literals are accepted.
func TestParseGraph_NegativeLiteral(t *testing.T) {
	g, err := exprgraph.ParseGraph("a: -17")
	require.NoError(t, err)
	v, err := g.Value("a")
	require.NoError(t, err)
	assert.Equal(t, int64(-17), v)
}

// TestParseGraph_Malformed surfaces a parse error, never a partial
// graph.
func TestParseGraph_Malformed(t *testing.T) {
	cases := []string{
		"root a + b",     // missing colon
		"root: a +",      // truncated operand
		"root: a % b",    // unsupported operator
		"root: a + b\n?", // garbage second line
	}
	for _, input := range cases {
		_, err := exprgraph.ParseGraph(input)
		assert.Error(t, err, "input %q", input)
	}
	var pe *parsec.ParseError
	_, err := exprgraph.ParseGraph("root a + b")
	assert.ErrorAs(t, err, &pe)
}

// TestRender_RoundTrip: parse(render(g)) reproduces g's semantics and
// text exactly.
func TestRender_RoundTrip(t *testing.T) {
	const input = "root: pppw + sjmn\ndbpl: 5\npppw: dbpl * dbpl\nsjmn: -3"
	g, err := exprgraph.ParseGraph(input)
	require.NoError(t, err)

	rendered := g.Render()
	assert.Equal(t, input, rendered, "render is canonical")

	again, err := exprgraph.ParseGraph(rendered)
	require.NoError(t, err)
	assert.Equal(t, rendered, again.Render())

	v1, err := g.Value("root")
	require.NoError(t, err)
	v2, err := again.Value("root")
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}
