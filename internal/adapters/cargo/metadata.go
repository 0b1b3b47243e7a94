package cargo

import (
	"context"
	"encoding/json"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Metadata implements ports.MetadataQuery using `cargo metadata`.
type Metadata struct {
	Cargo string
}

// NewMetadata creates a Metadata query running the given cargo program.
func NewMetadata(cargo string) *Metadata {
	return &Metadata{Cargo: cargo}
}

type metadataOutput struct {
	TargetDirectory string `json:"target_directory"`
}

// TargetDirectory returns the target directory of the project in the working directory.
func (m *Metadata) TargetDirectory(ctx context.Context) (string, error) {
	out, err := output(ctx, m.Cargo, "metadata", "--format-version", "1", "--no-deps")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrMetadataFailed.Error())
	}

	var meta metadataOutput
	if err := json.Unmarshal([]byte(out), &meta); err != nil {
		return "", zerr.Wrap(err, domain.ErrMetadataParseFailed.Error())
	}
	if meta.TargetDirectory == "" {
		return "", zerr.With(domain.ErrMetadataParseFailed, "field", "target_directory")
	}

	return meta.TargetDirectory, nil
}
