package llmservice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce_FencedAndPlainYieldSameMapping(t *testing.T) {
	fenced, err := Coerce("```json\n{\"a\":1}\n```")
	require.NoError(t, err)

	plain, err := Coerce(`{"a":1}`)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": float64(1)}, fenced)
	assert.Equal(t, fenced, plain)
}

func TestCoerce_FenceVariants(t *testing.T) {
	cases := map[string]string{
		"untagged fence":     "```\n{\"a\":1}\n```",
		"uppercase tag":      "```JSON\n{\"a\":1}\n```",
		"crlf":               "```json\r\n{\"a\":1}\r\n```",
		"surrounding spaces": "  \n```json\n{\"a\":1}\n```\n\n",
		"single line":        "```json{\"a\":1}```",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Coerce(raw)
			require.NoError(t, err)
			assert.Equal(t, float64(1), got["a"])
		})
	}
}

func TestCoerce_InvalidJSONIsParseError(t *testing.T) {
	_, err := Coerce("Sure! Here is your plan: breakfast is oatmeal.")

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Raw, "Sure!")

	var gwErr *GatewayError
	assert.False(t, errors.As(err, &gwErr))
}

func TestCoerce_NonObjectIsParseError(t *testing.T) {
	_, err := Coerce(`[1, 2, 3]`)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, errNotObject)
}

func TestStripCodeFence_KeepsUnfencedText(t *testing.T) {
	assert.Equal(t, `{"json": true}`, StripCodeFence("  {\"json\": true}\n"))
}
