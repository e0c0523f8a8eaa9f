package telemetry

import (
	"context"

	"notecage/internal/metrics"
)

// EmitTurnFeatures records size features of one raw model turn, before any
// normalization. Useful when judging how much of a model's output is
// reasoning noise versus command.
func EmitTurnFeatures(ctx context.Context, raw string) {
	if !ObserveEnabled() {
		return
	}
	turnID, _ := TurnIDFromContext(ctx)
	st := metrics.Measure(raw)
	Emit("turn_features", map[string]any{
		"turn_id": turnID,
		"raw": map[string]any{
			"bytes": st.Bytes,
			"runes": st.Runes,
			"words": st.Words,
			"lines": st.Lines,
		},
	})
}
