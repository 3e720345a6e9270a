package types

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOptionKindText(t *testing.T) {
	for in, want := range map[string]OptionKind{
		"lz-receive":     DirectReceive,
		"LZ_RECEIVE":     DirectReceive,
		"direct-receive": DirectReceive,
		"compose":        Compose,
		"3":              Compose,
		"4":              OptionKind(4),
	} {
		got, err := ParseOptionKind(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseOptionKind("native-drop")
	require.Error(t, err)

	require.False(t, OptionKind(4).Valid())
	require.Equal(t, "4", OptionKind(4).String())
}

func TestMessageTypeOptionYAML(t *testing.T) {
	var opts []MessageTypeOption
	err := yaml.Unmarshal([]byte(`
- msg-type: 2
  option-type: compose
  index: 1
  gas: 100000
- msg-type: 1
  option-type: lz-receive
  gas: "250000"
  value: 1000000000000000000
`), &opts)
	require.NoError(t, err)
	require.Len(t, opts, 2)

	require.Equal(t, Compose, opts[0].OptionKind)
	require.Equal(t, uint16(1), *opts[0].Index)
	require.True(t, opts[0].Value.IsZero())

	require.Nil(t, opts[1].Index)
	require.True(t, opts[1].Gas.Equal(sdkmath.NewInt(250_000)))
	require.Equal(t, "1000000000000000000", opts[1].Value.String())

	out, err := yaml.Marshal(opts[0])
	require.NoError(t, err)
	require.Contains(t, string(out), "option-type: compose")
	require.Contains(t, string(out), `gas: "100000"`)

	err = yaml.Unmarshal([]byte(`{msg-type: 1, option-type: lz-receive, gas: lots}`), &MessageTypeOption{})
	require.ErrorContains(t, err, "gas")

	// unknown keys are rejected even when the outer decoder is not strict
	err = yaml.Unmarshal([]byte(`{msg-type: 1, option-type: lz-receive, gass: 100000}`), &MessageTypeOption{})
	require.ErrorContains(t, err, "field gass not found")
}

func TestNormalizeCopiesIndex(t *testing.T) {
	o := MessageTypeOption{MsgType: 2, OptionKind: Compose, Index: Uint16(3)}
	n := o.Normalize()

	*o.Index = 7
	require.Equal(t, uint16(3), *n.Index)
	require.True(t, n.Gas.IsZero())
	require.True(t, n.Value.IsZero())
}

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("100_000")
	require.NoError(t, err)
	require.Equal(t, "100000", a.String())

	a, err = ParseAmount("")
	require.NoError(t, err)
	require.True(t, a.IsZero())

	_, err = ParseAmount("1e5")
	require.Error(t, err)
}
