package units_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// typeErrors type-checks body as the content of testdata/misuse and returns
// the type errors.
func typeErrors(t *testing.T, body string) []string {
	t.Helper()

	dir, err := filepath.Abs(filepath.Join("testdata", "misuse"))
	require.NoError(t, err)

	src := "package misuse\n\nimport \"quantity-generator/units\"\n\n" + body + "\n"

	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:     dir,
		Overlay: map[string][]byte{filepath.Join(dir, "misuse.go"): []byte(src)},
	}

	pkgs, err := packages.Load(cfg, ".")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	var msgs []string
	for _, e := range pkgs[0].Errors {
		msgs = append(msgs, e.Msg)
	}

	return msgs
}

func TestMisuseDoesNotCompile(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}

	_, err := os.Stat(filepath.Join("testdata", "misuse", "misuse.go"))
	require.NoError(t, err)

	assert.Empty(t, typeErrors(t, "var _ = units.NewLength(1.0, units.Meters{}).DivTime(units.NewTime(2.0, units.Seconds{}))"))

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "add across dimensions",
			body: "var _ = units.NewLength(1.0, units.Meters{}).Add(units.NewTime(1.0, units.Seconds{}))",
			want: "cannot use",
		},
		{
			name: "mix scalar types",
			body: "var _ = units.NewLength(1.0, units.Meters{}).Add(units.NewLength(1, units.Meters{}))",
			want: "cannot use",
		},
		{
			name: "unit of another dimension",
			body: "var _ = units.NewLength(1.0, units.Seconds{})",
			want: "does not implement",
		},
		{
			name: "undeclared operation",
			body: "var _ = units.NewLength(1.0, units.Meters{}).MulTime(units.NewTime(1.0, units.Seconds{}))",
			want: "MulTime undefined",
		},
		{
			name: "one of an affine unit",
			body: "var _ = units.TemperatureOne[float64](units.Celsius{})",
			want: "missing method Factor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := typeErrors(t, tt.body)
			require.NotEmpty(t, msgs)
			assert.Contains(t, msgs[0], tt.want)
		})
	}
}
