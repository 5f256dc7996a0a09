package expansion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmertex/riskyexpand/internal/command"
)

func testRegistry(t *testing.T) *command.Registry {
	t.Helper()
	reg, errs := command.Load(map[string]string{
		"bold":  "ctrl+b",
		"enter": "enter",
		"send":  "ctrl+enter",
	})
	require.Empty(t, errs)
	return reg
}

func TestCompile(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		name string
		raw  string
		want []Segment
	}{
		{
			name: "literal only",
			raw:  "plain text",
			want: []Segment{Literal("plain text")},
		},
		{
			name: "command only",
			raw:  "`bold`",
			want: []Segment{Command("bold")},
		},
		{
			name: "mixed",
			raw:  "Middle `bold`word`bold` bold.",
			want: []Segment{
				Literal("Middle "),
				Command("bold"),
				Literal("word"),
				Command("bold"),
				Literal(" bold."),
			},
		},
		{
			name: "adjacent commands drop empty literal",
			raw:  "`bold``enter`",
			want: []Segment{Command("bold"), Command("enter")},
		},
		{
			name: "signature",
			raw:  "Kind Regards,`enter`Andrew Frahn`enter``bold`Emmertex`bold``send`",
			want: []Segment{
				Literal("Kind Regards,"),
				Command("enter"),
				Literal("Andrew Frahn"),
				Command("enter"),
				Command("bold"),
				Literal("Emmertex"),
				Command("bold"),
				Command("send"),
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: []Segment{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.raw, reg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileMalformed(t *testing.T) {
	reg := testRegistry(t)

	_, err := Compile("odd `bold` tick`", reg)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Compile("`", reg)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestCompileUnknownCommand(t *testing.T) {
	reg := testRegistry(t)

	_, err := Compile("hello `nosuchcmd` world", reg)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCompileDeterministic(t *testing.T) {
	reg := testRegistry(t)
	raw := "Middle `bold`word`bold` bold."

	first, err := Compile(raw, reg)
	require.NoError(t, err)
	second, err := Compile(raw, reg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompileAll(t *testing.T) {
	reg := testRegistry(t)

	compiled, errs := CompileAll(map[string]string{
		"zsig":  "Kind Regards,`enter`Andrew Frahn",
		"zbad":  "broken `tick",
		"zmiss": "`nosuchcmd`",
	}, reg)

	require.Len(t, errs, 2)

	// Bad entries are dropped, the good one still compiles.
	assert.Len(t, compiled, 1)
	assert.Contains(t, compiled, "zsig")
	assert.Equal(t, []Segment{
		Literal("Kind Regards,"),
		Command("enter"),
		Literal("Andrew Frahn"),
	}, compiled["zsig"])
}
