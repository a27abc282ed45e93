package gemini_test

import (
	"context"
	"testing"

	"github.com/danespinosa/unsublink"
	"github.com/danespinosa/unsublink/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter_Complete_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	completer := gemini.NewCompleter(nil, "") // nil client ok for this test

	_, err := completer.Complete(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, unsublink.EINVALID, unsublink.ErrorCode(err))
	assert.Contains(t, unsublink.ErrorMessage(err), "prompt required")
}

func TestCompleter_Complete_ReturnsErrorWhenClientMissing(t *testing.T) {
	t.Parallel()

	completer := gemini.NewCompleter(nil, "")

	_, err := completer.Complete(context.Background(), "pick a link")

	require.Error(t, err)
	assert.Equal(t, unsublink.EUNAVAILABLE, unsublink.ErrorCode(err))
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "unsubscribe links")
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "NONE")
}

func TestBuildConfig_SetsDeterministicTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.0, *config.Temperature, 0.001)
}

func TestBuildConfig_BoundsOutput(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	assert.Positive(t, config.MaxOutputTokens)
}

func TestLoader_Load_ReturnsUnavailableWithoutAPIKey(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewLoader("", "").Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, unsublink.EUNAVAILABLE, unsublink.ErrorCode(err))
}
