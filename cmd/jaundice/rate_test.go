package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/jaundice"
	main "github.com/fwojciec/jaundice/cmd/jaundice"
	"github.com/fwojciec/jaundice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints score fields for successful analyses", func(t *testing.T) {
		t.Parallel()

		rate := 40.0
		words := 5
		elapsed := 12.5
		analyzer := &mock.BatchAnalyzer{
			AnalyzeBatchFn: func(_ context.Context, urls []string) ([]jaundice.Analysis, error) {
				require.Equal(t, []string{"https://inosmi.ru/a", "https://nope.example/b"}, urls)
				return []jaundice.Analysis{
					{
						URL:              "https://inosmi.ru/a",
						Status:           jaundice.StatusOK,
						Rate:             &rate,
						WordCount:        &words,
						ProcessingTimeMS: &elapsed,
					},
					{
						URL:    "https://nope.example/b",
						Status: jaundice.StatusUnsupportedSource,
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Analyzer: analyzer,
		}

		cmd := &main.RateCmd{URLs: []string{"https://inosmi.ru/a", "https://nope.example/b"}}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "URL: https://inosmi.ru/a")
		assert.Contains(t, output, "Status: OK")
		assert.Contains(t, output, "Rating: 40.00")
		assert.Contains(t, output, "Words: 5")
		assert.Contains(t, output, "Analysis took: 12.50 ms")
		assert.Contains(t, output, "URL: https://nope.example/b")
		assert.Contains(t, output, "Status: UNSUPPORTED_SOURCE")
		assert.Empty(t, stderr.String())
	})

	t.Run("omits score fields for failed analyses", func(t *testing.T) {
		t.Parallel()

		analyzer := &mock.BatchAnalyzer{
			AnalyzeBatchFn: func(_ context.Context, _ []string) ([]jaundice.Analysis, error) {
				return []jaundice.Analysis{
					{URL: "https://inosmi.ru/slow", Status: jaundice.StatusTimeout},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Analyzer: analyzer,
		}

		cmd := &main.RateCmd{URLs: []string{"https://inosmi.ru/slow"}}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Status: TIMEOUT")
		assert.NotContains(t, output, "Rating:")
		assert.NotContains(t, output, "Words:")
	})

	t.Run("reports batch errors on stderr", func(t *testing.T) {
		t.Parallel()

		analyzer := &mock.BatchAnalyzer{
			AnalyzeBatchFn: func(_ context.Context, _ []string) ([]jaundice.Analysis, error) {
				return nil, errors.New("context canceled")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Analyzer: analyzer,
		}

		cmd := &main.RateCmd{URLs: []string{"https://inosmi.ru/a"}}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}

func TestMain_Run_RateUsesInjectedAnalyzer(t *testing.T) {
	t.Parallel()

	rate := 0.0
	words := 0
	analyzer := &mock.BatchAnalyzer{
		AnalyzeBatchFn: func(_ context.Context, urls []string) ([]jaundice.Analysis, error) {
			return []jaundice.Analysis{
				{URL: urls[0], Status: jaundice.StatusOK, Rate: &rate, WordCount: &words},
			}, nil
		},
	}

	m := main.NewMain()
	m.ConfigPath = ""
	m.Analyzer = analyzer

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"rate", "https://inosmi.ru/a"}, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "URL: https://inosmi.ru/a")
	assert.Contains(t, stdout.String(), "Status: OK")
}
