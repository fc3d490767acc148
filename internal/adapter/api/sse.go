package api

import (
	"encoding/json"
	"fmt"
	"io"

	"dispute-core/internal/domain/entity"
)

type statusEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type resultEvent struct {
	Type   string                       `json:"type"`
	Result *entity.OrchestratorResponse `json:"result"`
}

// writeEvent emits one SSE frame: `event: <name>` then `data: <JSON>` and a
// blank line.
func writeEvent(w io.Writer, event string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, b)
	return err
}
