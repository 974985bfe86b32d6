package driver

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/BvHand487/shift/internal/codegen"
	"github.com/BvHand487/shift/internal/errors"
)

// BuildOptions configures the build subcommand (SPEC_FULL §4.7).
type BuildOptions struct {
	// OutputPath is the final executable's path. Defaults to the
	// source filename with its extension stripped.
	OutputPath string
	// ObjectPath, if non-empty, is an externally supplied object file
	// handed to the linker in place of Stub's (unimplemented) emission.
	// This lets the link step be exercised end-to-end without a real
	// code generator.
	ObjectPath string
}

// Build runs the pipeline, then hands the analyzed program to the
// codegen back end. Emission is not implemented (§4.4/§4.7), so this
// always fails with codegen.ErrNotImplemented unless opts.ObjectPath
// supplies an object file to link directly, bypassing emission.
func Build(source, filename string, opts BuildOptions) (*errors.Diagnostic, error) {
	result := NewPipeline(source, filename).Run()
	if result.Diagnostic != nil {
		return result.Diagnostic, nil
	}

	objectPath := opts.ObjectPath
	if objectPath == "" {
		_, err := codegen.NewStub().Generate(result.Program)
		return nil, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = strings.TrimSuffix(filename, filepath.Ext(filename))
	}

	return nil, link(objectPath, outputPath)
}

// link invokes the platform C compiler/linker on a (possibly
// caller-supplied) object file, producing the final executable
// (spec.md §6.2). The object is first copied to a uniquely named temp
// path so concurrent invocations against the same source file don't
// collide on the intermediate artifact.
func link(objectPath, outputPath string) error {
	tempObj := filepath.Join(os.TempDir(), fmt.Sprintf("shiftc-%s.o", uuid.NewString()))

	data, err := os.ReadFile(objectPath)
	if err != nil {
		return fmt.Errorf("reading object file: %w", err)
	}
	if err := os.WriteFile(tempObj, data, 0o644); err != nil {
		return fmt.Errorf("staging object file: %w", err)
	}
	defer os.Remove(tempObj)

	cmd := exec.Command("cc", tempObj, "-o", outputPath)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("linking %s: %w", outputPath, err)
	}
	return nil
}
