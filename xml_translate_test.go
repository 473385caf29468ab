// FILE: lixenwraith/registry/xml_translate_test.go
package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translate(t *testing.T, doc string) Tree {
	t.Helper()
	tree, err := translateXML([]byte(doc), map[string]any{"MAX_CONN": int64(100)})
	require.NoError(t, err)
	return coerceNumericLeaves(tree).(Tree)
}

func TestXMLRepeatedSiblings(t *testing.T) {
	t.Run("TwoSiblings", func(t *testing.T) {
		tree := translate(t, `<config><app><foo>1</foo><foo>2</foo></app></config>`)
		assert.Equal(t, Tree{"foo_0": int64(1), "foo_1": int64(2)}, tree["app"])
	})

	t.Run("ThreeSiblings", func(t *testing.T) {
		tree := translate(t, `<config><app><foo>1</foo><foo>2</foo><foo>3</foo></app></config>`)
		assert.Equal(t, Tree{"foo_0": int64(1), "foo_1": int64(2), "foo_2": int64(3)}, tree["app"])
	})

	t.Run("SmallestFreeSuffix", func(t *testing.T) {
		tree := translate(t, `<config><app><foo>a</foo><foo>b</foo><foo_2>taken</foo_2><foo>c</foo></app></config>`)
		assert.Equal(t, Tree{"foo_0": "a", "foo_1": "b", "foo_2": "taken", "foo_3": "c"}, tree["app"])
	})

	t.Run("RepeatedTrees", func(t *testing.T) {
		tree := translate(t, `<config><app><server><host>a</host></server><server><host>b</host></server></app></config>`)
		assert.Equal(t, Tree{
			"server_0": Tree{"host": "a"},
			"server_1": Tree{"host": "b"},
		}, tree["app"])
	})
}

func TestXMLKeyConventions(t *testing.T) {
	tree := translate(t, `<config>
	<app>
		<A_key name="created">2020-01-01</A_key>
		<A_key name="with space"><inner>x</inner></A_key>
		<U_private>secret</U_private>
		<I_404>not found</I_404>
		<plain>value</plain>
	</app>
</config>`)

	expected := Tree{
		"created":    "2020-01-01",
		"with space": Tree{"inner": "x"},
		"_private":   "secret",
		"404":        "not found",
		"plain":      "value",
	}
	if diff := cmp.Diff(expected, tree["app"]); diff != "" {
		t.Errorf("translation mismatch (-want +got):\n%s", diff)
	}
}

func TestXMLTypes(t *testing.T) {
	tree := translate(t, `<config>
	<app>
		<untyped_true>TRUE</untyped_true>
		<untyped_false>False</untyped_false>
		<untyped_text>hello</untyped_text>
		<untyped_int>42</untyped_int>
		<untyped_float>1.5</untyped_float>
		<typed_int type="int">7</typed_int>
		<typed_integer type="integer">-3</typed_integer>
		<typed_float type="float">2.25</typed_float>
		<typed_double type="double">1e3</typed_double>
		<flag_false type="bool">false</flag_false>
		<flag_one type="boolean">1</flag_one>
		<flag_zero type="bool">0</flag_zero>
		<flag_upper type="bool">TRUE</flag_upper>
		<zip type="string">007</zip>
		<nothing type="null">ignored</nothing>
		<NOTHING type="NULL"></NOTHING>
		<empty type="array"></empty>
		<limit type="constant">MAX_CONN</limit>
		<unset type="const"></unset>
	</app>
</config>`)

	expected := Tree{
		"untyped_true":  true,
		"untyped_false": false,
		"untyped_text":  "hello",
		"untyped_int":   int64(42),
		"untyped_float": 1.5,
		"typed_int":     int64(7),
		"typed_integer": int64(-3),
		"typed_float":   2.25,
		"typed_double":  1000.0,
		"flag_false":    false,
		"flag_one":      true,
		"flag_zero":     false,
		"flag_upper":    true,
		"zip":           "007",
		"nothing":       nil,
		"NOTHING":       nil,
		"empty":         Tree{},
		"limit":         int64(100),
		"unset":         nil,
	}
	if diff := cmp.Diff(expected, tree["app"]); diff != "" {
		t.Errorf("translation mismatch (-want +got):\n%s", diff)
	}
}

func TestXMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"InvalidBoolean", `<c><app><flag type="bool">maybe</flag></app></c>`, ErrInvalidBooleanLiteral},
		{"MissingKeyName", `<c><app><A_key>x</A_key></app></c>`, ErrMissingArrayKeyName},
		{"UndefinedConstant", `<c><app><x type="constant">NOPE</x></app></c>`, ErrUndefinedConstant},
		{"Resource", `<c><app><x type="resource">r</x></app></c>`, ErrDisallowedType},
		{"Object", `<c><app><x type="object">o</x></app></c>`, ErrDisallowedType},
		{"Unknown", `<c><app><x type="decimal">1</x></app></c>`, ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := translateXML([]byte(tt.doc), nil)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("Malformed", func(t *testing.T) {
		_, err := translateXML([]byte(`<c><app></c>`), nil)
		assert.Error(t, err)
	})

	t.Run("NoRoot", func(t *testing.T) {
		_, err := translateXML([]byte(`<?xml version="1.0"?>`), nil)
		assert.Error(t, err)
	})
}

func TestXMLBackend(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "global.xml", `<?xml version="1.0" encoding="UTF-8"?>
<config>
	<app.db>
		<host>localhost</host>
		<port>5432</port>
		<debug type="bool">0</debug>
	</app.db>
</config>`)
	writeFile(t, tmpDir, "db/local.xml", `<config>
	<app.db>
		<port>6543</port>
		<password type="string">12345</password>
	</app.db>
</config>`)

	b, err := NewXMLBackend(tmpDir)
	require.NoError(t, err)

	assert.True(t, b.ClassIsInRegistry("app.db"))
	assert.Equal(t, "localhost", b.GetConfigValue("app.db", "host", nil))
	assert.Equal(t, []any{int64(5432), int64(6543)}, b.GetConfigValue("app.db", "port", nil))
	assert.Equal(t, false, b.GetConfigValue("app.db", "debug", nil))
	assert.Equal(t, "12345", b.GetConfigValue("app.db", "password", nil))

	t.Run("TranslationErrorAbortsLoad", func(t *testing.T) {
		badDir := t.TempDir()
		writeFile(t, badDir, "global.xml", `<config><app><flag type="bool">maybe</flag></app></config>`)

		_, err := NewXMLBackend(badDir)
		assert.ErrorIs(t, err, ErrInvalidBooleanLiteral)
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		in       string
		expected any
		ok       bool
	}{
		{"42", int64(42), true},
		{"-7", int64(-7), true},
		{"+3", int64(3), true},
		{"007", int64(7), true},
		{"1.5", 1.5, true},
		{".5", 0.5, true},
		{"2.", 2.0, true},
		{"1e3", 1000.0, true},
		{"99999999999999999999", 1e20, true},
		{"abc", nil, false},
		{"12abc", nil, false},
		{"0x1F", nil, false},
		{"NaN", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseNumeric(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
