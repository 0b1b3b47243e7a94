package cargo

import (
	"encoding/json"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"go.trai.ch/zerr"
)

type artifactMessage struct {
	Target struct {
		Name string   `json:"name"`
		Kind []string `json:"kind"`
	} `json:"target"`
	Executable *string `json:"executable"`
}

type buildFinishedMessage struct {
	Success bool `json:"success"`
}

// decodeEvent decodes a single line of `--message-format json` output.
// Unknown reasons are kept as domain.OtherEvent.
func decodeEvent(line []byte) (domain.BuildEvent, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMalformedEvent.Error())
	}

	rawReason, ok := fields["reason"]
	if !ok {
		return nil, zerr.With(domain.ErrMalformedEvent, "missing", "reason")
	}
	var reason string
	if err := json.Unmarshal(rawReason, &reason); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMalformedEvent.Error())
	}

	switch reason {
	case domain.ReasonCompilerArtifact:
		var msg artifactMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrMalformedEvent.Error()), "reason", reason)
		}
		artifact := domain.ArtifactProduced{
			TargetName: msg.Target.Name,
			Kinds:      msg.Target.Kind,
		}
		if msg.Executable != nil {
			artifact.Executable = *msg.Executable
		}
		return artifact, nil

	case domain.ReasonBuildFinished:
		var msg buildFinishedMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrMalformedEvent.Error()), "reason", reason)
		}
		return domain.BuildFinished{Success: msg.Success}, nil

	default:
		return domain.OtherEvent{Kind: reason, Raw: json.RawMessage(line)}, nil
	}
}
