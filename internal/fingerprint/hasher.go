package fingerprint

import (
	"errors"
	"fmt"

	"github.com/tusharlock10/beaconrx-fingerprint/internal/config"
	"github.com/tusharlock10/beaconrx-fingerprint/internal/crypto"
)

// Pipeline selects how the hardware string is turned into a fingerprint.
type Pipeline string

const (
	// PipelineV1 hashes username‖hw‖passkey with SHA-256, then stretches the
	// hex digest with PBKDF2. Kept to reproduce fingerprints issued by older
	// releases.
	PipelineV1 Pipeline = "v1"
	// PipelineV2 stretches the hardware string directly with PBKDF2.
	PipelineV2 Pipeline = "v2"

	DefaultPipeline = PipelineV2
)

// Iterations is the PBKDF2 iteration count used by every pipeline.
const Iterations = 100_000

// ErrUnknownPipeline is returned by ParsePipeline and Fingerprint for an
// unrecognized pipeline name.
var ErrUnknownPipeline = errors.New("unknown fingerprint pipeline")

// Result holds the output of a pipeline run.
type Result struct {
	Pipeline Pipeline
	// Digest is the intermediate SHA-256 stage. Empty for PipelineV2.
	Digest string
	// Fingerprint is the final 64-character lowercase hex value.
	Fingerprint string
}

var pipelines = map[Pipeline]func(hw string, creds config.Credentials) (Result, error){
	PipelineV1: func(hw string, creds config.Credentials) (Result, error) {
		digest := crypto.SHA256Hex([]byte(creds.Username + hw + creds.Passkey))
		fp, err := crypto.PBKDF2SHA256Hex([]byte(digest), creds.Salt(), Iterations)
		if err != nil {
			return Result{}, err
		}
		return Result{Pipeline: PipelineV1, Digest: digest, Fingerprint: fp}, nil
	},
	PipelineV2: func(hw string, creds config.Credentials) (Result, error) {
		fp, err := crypto.PBKDF2SHA256Hex([]byte(hw), creds.Salt(), Iterations)
		if err != nil {
			return Result{}, err
		}
		return Result{Pipeline: PipelineV2, Fingerprint: fp}, nil
	},
}

// ParsePipeline validates a pipeline name.
func ParsePipeline(name string) (Pipeline, error) {
	p := Pipeline(name)
	if _, ok := pipelines[p]; !ok {
		return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownPipeline, name, PipelineV1, PipelineV2)
	}
	return p, nil
}

// Fingerprint derives the fingerprint of the hardware string hw, salted with
// creds, using pipeline p.
func Fingerprint(hw string, creds config.Credentials, p Pipeline) (Result, error) {
	run, ok := pipelines[p]
	if !ok {
		return Result{}, fmt.Errorf("%w %q", ErrUnknownPipeline, p)
	}
	res, err := run(hw, creds)
	if err != nil {
		return Result{}, fmt.Errorf("derive %s fingerprint: %w", p, err)
	}
	return res, nil
}
