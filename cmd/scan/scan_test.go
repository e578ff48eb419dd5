package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caveat-dev/caveat/internal/engine"
	"github.com/caveat-dev/caveat/pkg/logger"
)

const riskyContract = `1. Indemnification.
Customer shall indemnify and hold harmless the Company from any and all claims,
with unlimited liability and without limitation, as determined in its sole discretion.

2. Termination.
The Company may terminate this agreement at any time without notice, and all fees
paid are non-refundable.`

func TestRenderScan_SummaryStats(t *testing.T) {
	eng := engine.New(engine.Options{Logger: logger.NewMockLogger()})
	result := eng.QuickScan(riskyContract)
	require.Positive(t, result.TotalMatches)
	out := renderScan("contract.txt", result, &options{maxFlags: 10})

	assert.Contains(t, out, "Quick Scan: contract.txt")
	assert.Contains(t, out, "Estimated risk:")
	assert.Contains(t, out, "Red flags:")
	assert.Contains(t, out, "Match severity:")
	assert.Contains(t, out, "Clauses needing deep analysis:")
}

func TestRenderScan_Heatmap(t *testing.T) {
	eng := engine.New(engine.Options{Logger: logger.NewMockLogger()})
	result := eng.QuickScan(riskyContract)

	plain := renderScan("contract.txt", result, &options{maxFlags: 10})
	assert.NotContains(t, plain, "Heatmap")

	out := renderScan("contract.txt", result, &options{maxFlags: 10, showHeatmap: true})
	assert.Contains(t, out, "Heatmap")
	assert.Contains(t, out, "unlimited liability")
}

func TestRenderScan_MaxFlagsTruncation(t *testing.T) {
	eng := engine.New(engine.Options{Logger: logger.NewMockLogger()})
	result := eng.QuickScan(riskyContract)
	require.Greater(t, len(result.RedFlags), 1)

	out := renderScan("contract.txt", result, &options{maxFlags: 1})
	assert.True(t, strings.Contains(out, "more"), "truncation note expected")
}
