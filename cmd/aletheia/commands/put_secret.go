package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	chestUsecase "github.com/petrilli/aletheia/internal/chest/usecase"
)

// RunPutSecret encrypts a value and stores it in the chest under name.
// The value comes from the --value flag, a file, or stdin, in that order.
// An existing secret under the same name is replaced.
//
// Requirements: The chest's KMS key and bucket must be reachable.
func RunPutSecret(
	ctx context.Context,
	chestUseCase chestUsecase.ChestUseCase,
	logger *slog.Logger,
	io IOTuple,
	name string,
	value string,
	file string,
	format string,
) error {
	if name == "" {
		return fmt.Errorf("secret name is required")
	}

	data, err := readSecretValue(io.Reader, value, file)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("secret value is empty")
	}

	logger.Info("storing secret",
		slog.String("name", name),
		slog.Int("size", len(data)),
	)

	secret, err := chestUseCase.Create(ctx, name, data)
	if err != nil {
		return fmt.Errorf("failed to store secret: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputPutJSON(io.Writer, secret.Name(), secret.Route().String(), len(data))
	} else {
		outputPutText(io.Writer, secret.Name(), secret.Route().String(), len(data))
	}

	logger.Info("secret stored successfully", slog.String("name", name))

	return nil
}

// readSecretValue resolves the secret payload from the flag, the file, or the
// reader, in that order.
func readSecretValue(reader io.Reader, value, file string) ([]byte, error) {
	if value != "" {
		return []byte(value), nil
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read value file: %w", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read value from stdin: %w", err)
	}
	return data, nil
}

// outputPutText outputs the result in human-readable text format.
func outputPutText(writer io.Writer, name, key string, size int) {
	_, _ = fmt.Fprintln(writer, "Secret stored successfully!")
	_, _ = fmt.Fprintf(writer, "Name: %s\n", name)
	_, _ = fmt.Fprintf(writer, "Key: %s\n", key)
	_, _ = fmt.Fprintf(writer, "Size: %d byte(s)\n", size)
}

// outputPutJSON outputs the result in JSON format for machine consumption.
func outputPutJSON(writer io.Writer, name, key string, size int) {
	result := map[string]interface{}{
		"name": name,
		"key":  key,
		"size": size,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
