package pattern_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strpattern/charrun"
	"github.com/katalvlaran/strpattern/pattern"
)

func samplePattern(t *testing.T) pattern.Pattern {
	t.Helper()
	p, err := pattern.New([]charrun.Element{
		charrun.NewChoices('R', '-', ']'),
		{Kind: charrun.Digit, MinRepeat: 3, MaxRepeat: 3, FractionUsed: 1},
		{Kind: charrun.AlphaNumeric, MinRepeat: 1, MaxRepeat: 4, FractionUsed: 0.25},
		{Kind: charrun.Lowercase, MinRepeat: 2, MaxRepeat: 2, FractionUsed: 1.0 / 3.0},
		{Kind: charrun.Uppercase, MinRepeat: 1, MaxRepeat: 1, FractionUsed: 1},
		{Kind: charrun.Letters, MinRepeat: 5, MaxRepeat: 9, FractionUsed: 0.5},
		{Kind: charrun.AnySet, MinRepeat: 0, MaxRepeat: 1, FractionUsed: 0},
		{Kind: charrun.AnySet, MinRepeat: 1, MaxRepeat: 7, FractionUsed: 0.9, Extra: []rune{'\t', 'é'}},
	}, true)
	require.NoError(t, err)

	return p
}

func TestPattern_JSONRoundTrip(t *testing.T) {
	p := samplePattern(t)
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got pattern.Pattern
	require.NoError(t, json.Unmarshal(data, &got))
	if diff := cmp.Diff(p.Elements(), got.Elements(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, p.Equal(got))
}

func TestPattern_YAMLRoundTrip(t *testing.T) {
	p := samplePattern(t)
	data, err := yaml.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "unique: true")
	assert.Contains(t, string(data), "kind: single_char_set")

	var got pattern.Pattern
	require.NoError(t, yaml.Unmarshal(data, &got))
	if diff := cmp.Diff(p.Elements(), got.Elements(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, p.Equal(got))
}

func TestPattern_FittedRoundTrip(t *testing.T) {
	p, err := pattern.Fit([]string{"ab-12", "x-3", "héllo-456", "Q-7", "", "zz-99"})
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	var got pattern.Pattern
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, p.Equal(got), "%s vs %s", p, got)
}

func TestPattern_Document(t *testing.T) {
	p, err := pattern.Parse(`[R]\d{3,3}`)
	require.NoError(t, err)
	want := pattern.Document{Elements: []pattern.Record{
		{Kind: "single_char_set", Token: "[R]", FractionUsed: 1},
		{Kind: "digit", Token: `\d{3,3}`, FractionUsed: 1},
	}}
	assert.Equal(t, want, p.Document())

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unique":false,"elements":[
		{"kind":"single_char_set","token":"[R]","fraction_used":1},
		{"kind":"digit","token":"\\d{3,3}","fraction_used":1}]}`, string(data))
}

func TestFromDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		rec  pattern.Record
		want error
	}{
		{"unknown kind", pattern.Record{Kind: "hex", Token: `\d`, FractionUsed: 1}, charrun.ErrUnknownKind},
		{"bad token", pattern.Record{Kind: "digit", Token: `?`, FractionUsed: 1}, charrun.ErrUnrecognizedToken},
		{"trailing", pattern.Record{Kind: "digit", Token: `\d{2,2}[a-z]`, FractionUsed: 1}, pattern.ErrTrailingToken},
		{"mismatch", pattern.Record{Kind: "letters", Token: `[a-z]`, FractionUsed: 1}, pattern.ErrKindMismatch},
		{"fraction", pattern.Record{Kind: "digit", Token: `\d`, FractionUsed: 2}, charrun.ErrInvalidElement},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pattern.FromDocument(pattern.Document{Elements: []pattern.Record{
				{Kind: "digit", Token: `\d`, FractionUsed: 1},
				tc.rec,
			}})
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "record 1")
		})
	}

	var p pattern.Pattern
	err := json.Unmarshal([]byte(`{"elements":[{"kind":"digit","token":"x","fraction_used":1}]}`), &p)
	assert.ErrorIs(t, err, charrun.ErrUnrecognizedToken)
	err = yaml.Unmarshal([]byte("elements:\n  - kind: any\n    token: '[a]'\n    fraction_used: 1\n"), &p)
	assert.ErrorIs(t, err, pattern.ErrKindMismatch)
}

func TestParse(t *testing.T) {
	p, err := pattern.Parse(`[R]\d[a-zA-Z0-9]{2,4}.[é]{0,3}[\-x]`)
	require.NoError(t, err)
	kinds := make([]charrun.Kind, 0, p.Len())
	for _, e := range p.Elements() {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []charrun.Kind{
		charrun.SingleCharSet, charrun.Digit, charrun.AlphaNumeric, charrun.AnySet, charrun.SingleCharSet,
	}, kinds)
	assert.Equal(t, `[R]\d[a-zA-Z0-9]{2,4}.[é]{0,3}[\-x]`, p.String())

	_, err = pattern.Parse(`[R]\d{2,1}`)
	assert.ErrorIs(t, err, charrun.ErrUnrecognizedToken)
	assert.Contains(t, err.Error(), "offset 3")

	empty, err := pattern.Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestNew_Validates(t *testing.T) {
	_, err := pattern.New([]charrun.Element{
		charrun.New(charrun.Digit),
		{Kind: charrun.Digit, MinRepeat: 2, MaxRepeat: 1},
	}, false)
	assert.ErrorIs(t, err, charrun.ErrInvalidElement)
	assert.Contains(t, err.Error(), "element 1")
}

func TestPattern_RegexpAndKeyspace(t *testing.T) {
	p, err := pattern.Parse(`[R]\d{3,3}`)
	require.NoError(t, err)
	assert.Equal(t, `^[\x{52}][0-9]{3,3}$`, p.Expr())
	re, err := p.Regexp()
	require.NoError(t, err)
	assert.True(t, re.MatchString("R123"))
	assert.False(t, re.MatchString("R12"))
	assert.Equal(t, 1000.0, p.Keyspace())
}
